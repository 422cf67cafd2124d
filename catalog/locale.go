// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"sort"

	"golang.org/x/text/language"
)

// DefaultBaseline is the locale assumed before Setup installs the workspace
// baseline.
const DefaultBaseline = "en"

// baseTag is the canonical tag for the baseline locale. Setup replaces it
// with the workspace's baseline.
var baseTag = language.Make(DefaultBaseline)

// Languages returns the list of supported language tags derived from the
// loaded translation files.
//
// The returned slice is a copy, is sorted by tag string, and is safe to retain.
//
// Setup must be called successfully before using Languages; otherwise it panics.
func Languages() []language.Tag {
	if matcher == nil {
		panic("catalog: Setup must be called before calling Languages")
	}

	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)

	// Sort by canonical tag string.
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}
