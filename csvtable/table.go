// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package csvtable

import "strings"

// Table is an ordered sequence of CSV rows.
//
// A nil row marks a blank source line; Format writes it back as a blank line.
// Non-nil rows always have at least one field, because ParseRow flushes the
// final field even for an accumulated empty string.
type Table struct {
	Rows [][]string
}

// ParseTable splits text on newlines and parses every non-blank line.
//
// One trailing newline is not counted as a blank final line. Round trip:
// Format(ParseTable(text)) reproduces text for any input that ends with a
// newline.
func ParseTable(text string) Table {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Table{}
	}

	lines := strings.Split(text, "\n")

	rows := make([][]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}

		rows[i] = ParseRow(line)
	}

	return Table{Rows: rows}
}

// Format serializes the table, one line per row, ending with a newline.
func (t Table) Format() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var b strings.Builder

	for _, row := range t.Rows {
		if row != nil {
			b.WriteString(FormatRow(row))
		}

		b.WriteByte('\n')
	}

	return b.String()
}
