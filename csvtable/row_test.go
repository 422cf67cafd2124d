// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package csvtable

import (
	"reflect"
	"testing"
)

func TestParseRow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
		want []string
	}{
		{
			"Plain fields",
			"greet,Hello,World",
			[]string{"greet", "Hello", "World"},
		},
		{
			"Quoted field with a comma",
			`greet,Hello,"Hallo, Welt"`,
			[]string{"greet", "Hello", "Hallo, Welt"},
		},
		{
			"Doubled quote inside a quoted field",
			`k,"say ""hi"""`,
			[]string{"k", `say "hi"`},
		},
		{
			"Empty fields",
			"a,,c",
			[]string{"a", "", "c"},
		},
		{
			"Trailing comma yields an empty final field",
			"a,b,",
			[]string{"a", "b", ""},
		},
		{
			"Empty line is one empty field",
			"",
			[]string{""},
		},
		{
			"Quoted empty field",
			`a,"",c`,
			[]string{"a", "", "c"},
		},
		{
			"Unbalanced quote flushes the rest as one field",
			`a,"b,c`,
			[]string{"a", "b,c"},
		},
		{
			"Quote in the middle of an unquoted field",
			`a,b"c,d`,
			[]string{"a", "bc,d"},
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseRow(tc.line); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseRow(%q) = %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}

func TestEscapeField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		field string
		want  string
	}{
		{"Plain text stays bare", "Hello", "Hello"},
		{"Empty field stays bare", "", ""},
		{"Comma forces quoting", "Hallo, Welt", `"Hallo, Welt"`},
		{"Quote is doubled", `say "hi"`, `"say ""hi"""`},
		{"Newline forces quoting", "a\nb", "\"a\nb\""},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeField(tc.field); got != tc.want {
				t.Errorf("EscapeField(%q) = %q, want %q", tc.field, got, tc.want)
			}
		})
	}
}

func TestEscapeFieldParsesBack(t *testing.T) {
	t.Parallel()

	fields := []string{"plain", "", "a,b", `say "hi"`, `",",`, "ümlaut, ß"}

	for _, field := range fields {
		got := ParseRow(EscapeField(field))
		if len(got) != 1 || got[0] != field {
			t.Errorf("ParseRow(EscapeField(%q)) = %q, want [%q]", field, got, field)
		}
	}
}

func TestRowRoundTrip(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"greet", "Hello", "Hallo, Welt"},
		{""},
		{"a", "", ""},
		{`quote "inside"`, "comma, here", "plain"},
	}

	for _, row := range cases {
		line := FormatRow(row)

		if got := ParseRow(line); !reflect.DeepEqual(got, row) {
			t.Errorf("ParseRow(%q) = %q, want %q", line, got, row)
		}
	}
}

func TestFormatRowScenario(t *testing.T) {
	t.Parallel()

	// Serializing a parsed row reproduces the original text when the source
	// quoted exactly the fields that need it.
	line := `greet,Hello,"Hallo, Welt"`

	if got := FormatRow(ParseRow(line)); got != line {
		t.Errorf("FormatRow(ParseRow(%q)) = %q", line, got)
	}
}
