// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

import (
	"testing"
)

func TestUpgradeAnnotatesStrings(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `{"ui":{"menu_start":"Start","title":"Title"}}`)
	verified := map[string]bool{"menu_start": true}

	got := mustJSON(t, Upgrade(tree, verified))

	want := `{"ui":{"menu_start":{"text":"Start","humanVerified":true},"title":{"text":"Title","humanVerified":false}}}`
	if got != want {
		t.Errorf("Upgrade() = %s, want %s", got, want)
	}
}

func TestUpgradeVerifiedByFullPath(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `{"ui":{"title":"T"},"title":"other"}`)
	verified := map[string]bool{"ui.title": true}

	got := mustJSON(t, Upgrade(tree, verified))

	want := `{"ui":{"title":{"text":"T","humanVerified":true}},"title":{"text":"other","humanVerified":false}}`
	if got != want {
		t.Errorf("Upgrade() = %s, want %s", got, want)
	}
}

func TestUpgradeIsIdempotent(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `{"a":"x","b":{"c":"y"},"d":[1,2]}`)
	verified := map[string]bool{"a": true}

	once := Upgrade(tree, verified)

	first := mustJSON(t, once)

	second := mustJSON(t, Upgrade(once, verified))
	if first != second {
		t.Errorf("second upgrade changed output:\n first = %s\nsecond = %s", first, second)
	}
}

func TestUpgradeKeepsExistingAnnotations(t *testing.T) {
	t.Parallel()

	// An already annotated message keeps its flag even when the sheet no
	// longer marks the key as verified.
	tree := mustParse(t, `{"a":{"text":"x","humanVerified":true}}`)

	got := mustJSON(t, Upgrade(tree, nil))

	want := `{"a":{"text":"x","humanVerified":true}}`
	if got != want {
		t.Errorf("Upgrade() = %s, want %s", got, want)
	}
}

func TestUpgradePassesOpaqueThrough(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `{"a":[1,"two",null],"b":42}`)

	got := mustJSON(t, Upgrade(tree, nil))

	want := `{"a":[1,"two",null],"b":42}`
	if got != want {
		t.Errorf("Upgrade() = %s, want %s", got, want)
	}
}

func TestUpgradeDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	tree := mustParse(t, `{"a":"x","b":{"c":"y"}}`)
	before := mustJSON(t, tree)

	Upgrade(tree, map[string]bool{"a": true})

	if after := mustJSON(t, tree); after != before {
		t.Errorf("input changed:\nbefore = %s\n after = %s", before, after)
	}
}
