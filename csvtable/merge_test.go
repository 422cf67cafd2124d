// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package csvtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mergeMaster = `key,en,de
key,English,Deutsch
greet,Hello,"Hallo, Welt"

farewell,Bye,Tschüss
`

const mergeIncoming = `key,fr
key,Français
greet,Bonjour
`

func TestMergeLanguageColumn(t *testing.T) {
	t.Parallel()

	master := ParseTable(mergeMaster)
	incoming := ParseTable(mergeIncoming)

	merged, err := MergeLanguageColumn(master, incoming, 2, "Français")
	require.NoError(t, err)

	want := `key,en,fr,de
key,English,Français,Deutsch
greet,Hello,Bonjour,"Hallo, Welt"

farewell,Bye,,Tschüss
`
	assert.Equal(t, want, merged.Format())
}

func TestMergeLanguageColumnAppendsAtEnd(t *testing.T) {
	t.Parallel()

	master := ParseTable(mergeMaster)
	incoming := ParseTable(mergeIncoming)

	merged, err := MergeLanguageColumn(master, incoming, 3, "Français")
	require.NoError(t, err)

	want := `key,en,de,fr
key,English,Deutsch,Français
greet,Hello,"Hallo, Welt",Bonjour

farewell,Bye,Tschüss,
`
	assert.Equal(t, want, merged.Format())
}

func TestMergeLanguageColumnIgnoresExtraIncomingColumns(t *testing.T) {
	t.Parallel()

	master := ParseTable(mergeMaster)
	incoming := ParseTable("key,fr,note\nkey,Français,interne\ngreet,Bonjour,brouillon\n")

	merged, err := MergeLanguageColumn(master, incoming, 2, "Français")
	require.NoError(t, err)

	assert.Equal(t, []string{"greet", "Hello", "Bonjour", "Hallo, Welt"}, merged.Rows[2])
}

func TestMergeLanguageColumnErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		master      string
		incoming    string
		insertIndex int
	}{
		{"Master without header rows", "key,en\n", mergeIncoming, 1},
		{"Master with a blank header line", "\nkey,English\n", mergeIncoming, 1},
		{"Insert before the key column", mergeMaster, mergeIncoming, 0},
		{"Insert past the header", mergeMaster, mergeIncoming, 4},
		{"Empty incoming", mergeMaster, "", 2},
		{"Incoming without a language column", mergeMaster, "key\nkey\n", 2},
		{"Incoming data row without a value", mergeMaster, "key,fr\nkey,Français\ngreet\n", 2},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := MergeLanguageColumn(ParseTable(tc.master), ParseTable(tc.incoming), tc.insertIndex, "x")
			assert.Error(t, err)
		})
	}
}

func TestMergeLanguageColumnDoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	master := ParseTable(mergeMaster)
	incoming := ParseTable(mergeIncoming)

	_, err := MergeLanguageColumn(master, incoming, 2, "Français")
	require.NoError(t, err)

	assert.Equal(t, mergeMaster, master.Format())
	assert.Equal(t, mergeIncoming, incoming.Format())
}
