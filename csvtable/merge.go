// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package csvtable

import (
	"errors"
	"fmt"
)

// Row layout of a translation sheet: two header rows, then data rows keyed by
// the first field.
const (
	rowColumnKeys   = 0
	rowDisplayNames = 1
	dataRowStart    = 2
)

var (
	errMasterHeader     = errors.New("master table is missing its two header rows")
	errIncomingHeader   = errors.New("incoming table has no header row")
	errIncomingNoColumn = errors.New("incoming header has no language column")
	errInsertIndex      = errors.New("insert position outside the language columns")
	errShortRow         = errors.New("incoming data row has no value field")
)

// MergeLanguageColumn splices a new language column into a master sheet.
//
// incoming is a single-language export in the same layout as the master: its
// header row supplies the new column key (the language code) in field 1, and
// its data rows map key to translated text. The master's header row takes the
// code at insertIndex, the display-name row takes displayName, and every data
// row takes the incoming text for its key, or an empty string when the key is
// absent from the export. Blank lines in the master pass through as blank
// lines.
//
// The merge is purely positional. No column-name lookup is performed, so
// insertIndex must match the master's current layout; it may equal the header
// length to append the column at the end, but may not be zero, which would
// displace the key column. Neither input table is modified.
func MergeLanguageColumn(master, incoming Table, insertIndex int, displayName string) (Table, error) {
	if len(master.Rows) < dataRowStart ||
		master.Rows[rowColumnKeys] == nil || master.Rows[rowDisplayNames] == nil {
		return Table{}, errMasterHeader
	}

	header := master.Rows[rowColumnKeys]
	if insertIndex < 1 || insertIndex > len(header) {
		return Table{}, fmt.Errorf("%w: %d not in [1, %d]", errInsertIndex, insertIndex, len(header))
	}

	code, texts, err := incomingTexts(incoming)
	if err != nil {
		return Table{}, err
	}

	rows := make([][]string, len(master.Rows))

	for i, row := range master.Rows {
		if row == nil {
			continue
		}

		switch i {
		case rowColumnKeys:
			rows[i] = splice(row, insertIndex, code)
		case rowDisplayNames:
			rows[i] = splice(row, insertIndex, displayName)
		default:
			rows[i] = splice(row, insertIndex, texts[row[0]])
		}
	}

	return Table{Rows: rows}, nil
}

// incomingTexts extracts the language code and the key to text mapping from a
// single-language export. Columns beyond the first two are ignored.
func incomingTexts(incoming Table) (string, map[string]string, error) {
	if len(incoming.Rows) == 0 || incoming.Rows[rowColumnKeys] == nil {
		return "", nil, errIncomingHeader
	}

	header := incoming.Rows[rowColumnKeys]
	if len(header) < 2 {
		return "", nil, errIncomingNoColumn
	}

	texts := make(map[string]string)

	for i := dataRowStart; i < len(incoming.Rows); i++ {
		row := incoming.Rows[i]
		if row == nil {
			continue
		}

		if len(row) < 2 {
			return "", nil, fmt.Errorf("%w: line %d", errShortRow, i+1)
		}

		texts[row[0]] = row[1]
	}

	return header[1], texts, nil
}

// splice returns a copy of row with field inserted before index i. An index
// past the end of a short row appends instead, keeping the splice positional
// without indexing out of range.
func splice(row []string, i int, field string) []string {
	if i > len(row) {
		i = len(row)
	}

	out := make([]string, 0, len(row)+1)
	out = append(out, row[:i]...)
	out = append(out, field)
	out = append(out, row[i:]...)

	return out
}
