// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"context"

	"golang.org/x/text/language"
)

type contextKeyType struct{}

var tagKey = contextKeyType{}

// WithTag stores t in ctx and returns a derived context that carries it.
//
// The returned context should be passed to downstream code that performs
// lookups. Passing the zero value of [language.Tag] clears any existing value.
//
// The ctx must not be nil.
func WithTag(ctx context.Context, t language.Tag) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// TagFrom returns the language tag stored in ctx, or the baseline tag if none
// is present. It never returns the zero value of [language.Tag].
//
// Setup must be called successfully before using [Text] or [Languages],
// otherwise those functions panic or fall back. TagFrom itself does not panic
// and simply returns the baseline tag when no tag is found in ctx or ctx is
// nil.
func TagFrom(ctx context.Context) language.Tag {
	if ctx != nil {
		if t, _ := ctx.Value(tagKey).(language.Tag); t != (language.Tag{}) {
			return t
		}
	}

	return baseTag
}

// Match resolves a free-form locale preference, for example a LANG value or a
// command line flag, to the closest loaded locale. The returned tag is always
// one of [Languages], so it can be passed to [WithTag] and resolve exactly.
//
// If Setup has not been called, Match returns the baseline tag.
func Match(preferred ...string) language.Tag {
	if matcher == nil || len(preferred) == 0 {
		return baseTag
	}

	_, idx := language.MatchStrings(matcher, preferred...)

	return supportedTags[idx]
}
