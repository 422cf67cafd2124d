// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

import (
	"testing"
)

func TestSyncFillsAbsentKeys(t *testing.T) {
	t.Parallel()

	baseline := mustParse(t, `{"a":{"b":"hello","c":"world"}}`)
	target := mustParse(t, `{"a":{"b":"bonjour"}}`)

	got := mustJSON(t, Sync(target, baseline))

	want := `{"a":{"b":"bonjour","c":"world"}}`
	if got != want {
		t.Errorf("Sync() = %s, want %s", got, want)
	}
}

func TestSyncNeverOverwrites(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		target string
	}{
		{"Translated string", `{"k":"bonjour"}`},
		{"Annotated message", `{"k":{"text":"bonjour","humanVerified":true}}`},
		{"Opaque value", `{"k":[1,2,3]}`},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			baseline := mustParse(t, `{"k":"hello"}`)
			target := mustParse(t, tc.target)

			if got := mustJSON(t, Sync(target, baseline)); got != tc.target {
				t.Errorf("Sync() = %s, want %s", got, tc.target)
			}
		})
	}
}

func TestSyncKeepsExtraTargetKeys(t *testing.T) {
	t.Parallel()

	baseline := mustParse(t, `{"a":"1"}`)
	target := mustParse(t, `{"a":"un","legacy":"gardé"}`)

	got := mustJSON(t, Sync(target, baseline))

	want := `{"a":"un","legacy":"gardé"}`
	if got != want {
		t.Errorf("Sync() = %s, want %s", got, want)
	}
}

func TestSyncCreatesIntermediateBranches(t *testing.T) {
	t.Parallel()

	baseline := mustParse(t, `{"ui":{"menu":{"start":"Start"}},"empty":{}}`)
	target := mustParse(t, `{}`)

	result := Sync(target, baseline)

	if got := mustJSON(t, result); got != `{"ui":{"menu":{"start":"Start"}},"empty":{}}` {
		t.Errorf("Sync() = %s", got)
	}

	if missing := MissingKeys(baseline, result); missing != nil {
		t.Errorf("MissingKeys() after sync = %v, want none", missing)
	}
}

func TestSyncShapeConflicts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		baseline string
		target   string
	}{
		{
			"Target leaf where baseline has a branch",
			`{"a":{"b":"y"}}`,
			`{"a":"x"}`,
		},
		{
			"Target branch where baseline has a leaf",
			`{"a":"x"}`,
			`{"a":{"b":"y"}}`,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			baseline := mustParse(t, tc.baseline)
			target := mustParse(t, tc.target)

			// The conflicting subtree keeps the target's shape untouched.
			if got := mustJSON(t, Sync(target, baseline)); got != tc.target {
				t.Errorf("Sync() = %s, want %s", got, tc.target)
			}
		})
	}
}

func TestSyncDoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	baseline := mustParse(t, `{"a":{"b":"hello","c":"world"}}`)
	target := mustParse(t, `{"a":{"b":"bonjour"}}`)

	baselineBefore := mustJSON(t, baseline)
	targetBefore := mustJSON(t, target)

	result := Sync(target, baseline)

	// Mutating the result must not reach back into either input.
	inner, _ := result.Get("a")
	inner.Branch.Set("c", &Node{Kind: KindText, Text: "changed"})

	if got := mustJSON(t, baseline); got != baselineBefore {
		t.Errorf("baseline changed: %s, want %s", got, baselineBefore)
	}

	if got := mustJSON(t, target); got != targetBefore {
		t.Errorf("target changed: %s, want %s", got, targetBefore)
	}
}
