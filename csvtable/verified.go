// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package csvtable

import "strings"

// VerifiedKeys collects the sheet keys that carry human-verified
// translations: every data-row key that starts with one of the given
// prefixes. Presence in the sheet is what marks a key verified; the sheet
// holds only human work.
//
// Keys come from fully parsed rows, so a quoted field with an early comma in
// the same line cannot corrupt key detection.
func VerifiedKeys(t Table, prefixes []string) map[string]bool {
	verified := make(map[string]bool)

	for i := dataRowStart; i < len(t.Rows); i++ {
		row := t.Rows[i]
		if row == nil || row[0] == "" {
			continue
		}

		for _, prefix := range prefixes {
			if strings.HasPrefix(row[0], prefix) {
				verified[row[0]] = true

				break
			}
		}
	}

	return verified
}
