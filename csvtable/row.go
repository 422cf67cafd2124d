// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package csvtable

import "strings"

// ParseRow splits one CSV line into its fields.
//
// The scanner runs left to right with a single quoted/unquoted state. A
// double quote toggles the state, except that a doubled quote inside a quoted
// field emits one literal quote. A comma ends the current field only outside
// quotes. The end of the line flushes the final field, even when the line
// ends still inside quotes.
//
// The line must not contain a newline; callers split rows on newline first.
func ParseRow(line string) []string {
	var (
		fields []string
		field  strings.Builder
		quoted bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '"':
			// A doubled quote inside a quoted field is an escaped literal quote;
			// both characters are consumed.
			if quoted && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')

				i++

				continue
			}

			quoted = !quoted
		case c == ',' && !quoted:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, field.String())
}

// EscapeField quotes a field for serialization if and only if it needs it.
//
// A field containing a comma, a double quote, or a newline is wrapped in
// double quotes with internal quotes doubled; any other field is returned
// unchanged.
func EscapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}

	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// FormatRow serializes fields as one CSV line, without a trailing newline.
func FormatRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = EscapeField(f)
	}

	return strings.Join(escaped, ",")
}
