// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package catalog provides runtime lookups over the translation files of a
locales workspace. It resolves dotted key paths across locales with baseline
fallback and placeholder formatting.

# Quick start

Address messages by their key path in the translation tree:

	catalog.Text(ctx, "ui.menu.start")
	catalog.Key("ui.greeting").Text(ctx, "Name", user.Name)

The locale comes from the context; install one with:

	ctx = catalog.WithTag(ctx, tag)

# Missing keys

A key the matched locale lacks renders with the baseline text, and a key the
baseline lacks too renders as the key path itself. When StrictMissingKeys is
enabled, such lookups are additionally logged (deduplicated per locale+key)
and the returned text is visibly wrapped as "⟦...⟧".

# Formatting

Texts can include placeholders that are processed by Go's standard
text/template package. Provide substitutions as alternating key-value pairs:

	catalog.Text(ctx, "ui.greeting", "Name", user.Name)

Numbers are not localised automatically; convert values to strings yourself
if you need locale-specific presentation.
*/
package catalog
