// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package csvtable implements the CSV dialect used by the community translation
sheet and the operations the pipeline performs on it.

# Dialect

Fields containing a comma, a double quote, or a newline are wrapped in double
quotes, and internal double quotes are doubled. Anything else is written
verbatim. ParseRow and FormatRow are exact inverses for rows without embedded
newlines.

Rows are split on newline before they reach ParseRow, so a quoted field that
spans lines is parsed incorrectly. This is a known limitation of the dialect,
not a feature; the sheet never contains multi-line fields in practice. A row
that ends while still inside quotes parses best-effort: the scanner flushes
whatever it accumulated without raising an error.

# Table layout

Row 0 is the column-key header: "key" followed by one language code per
column. Row 1 carries human-readable language display names, not
translations. Every later row is a data row: the translation key, then one
text per language. Blank lines are preserved as blank lines and never treated
as data.
*/
package csvtable
