// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want []string
	}{
		{
			"Empty document",
			`{}`,
			nil,
		},
		{
			"Flat leaves",
			`{"a":"1","b":"2"}`,
			[]string{"a", "b"},
		},
		{
			"Nested branches in document order",
			`{"ui":{"menu":{"start":"Start","quit":"Quit"},"title":"T"},"version":"1"}`,
			[]string{"ui.menu.start", "ui.menu.quit", "ui.title", "version"},
		},
		{
			"Empty branch contributes no paths",
			`{"a":{},"b":"x"}`,
			[]string{"b"},
		},
		{
			"Annotated and opaque leaves count as paths",
			`{"a":{"text":"t","humanVerified":true},"b":[1,2]}`,
			[]string{"a", "b"},
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Flatten(mustParse(t, tc.doc)); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Flatten() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMissingKeys(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		baseline string
		target   string
		want     []string
	}{
		{
			"Target complete",
			`{"a":{"b":"hello","c":"world"}}`,
			`{"a":{"b":"bonjour","c":"monde"}}`,
			nil,
		},
		{
			"Target lacks one leaf",
			`{"a":{"b":"hello","c":"world"}}`,
			`{"a":{"b":"bonjour"}}`,
			[]string{"a.c"},
		},
		{
			"Target empty",
			`{"a":{"b":"hello"},"c":"x"}`,
			`{}`,
			[]string{"a.b", "c"},
		},
		{
			"Extra target keys are not reported",
			`{"a":"1"}`,
			`{"a":"un","z":"extra"}`,
			nil,
		},
		{
			"Leaf in baseline is a branch in target",
			`{"a":"1"}`,
			`{"a":{"b":"x"}}`,
			[]string{"a"},
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := MissingKeys(mustParse(t, tc.baseline), mustParse(t, tc.target))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("MissingKeys() = %v, want %v", got, tc.want)
			}
		})
	}
}
