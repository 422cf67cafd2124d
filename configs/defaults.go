// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

// SetDefaults populates the configuration with default values.
func (cfg *Config) SetDefaults() {
	cfg.Locales.Root = "locales"
	cfg.Locales.File = "translation.json"
	cfg.Locales.Baseline = "en"

	cfg.Sheet.Path = "data/translations.csv"
	cfg.Sheet.VerifiedPrefixes = []string{"menu_", "option_"}

	cfg.Backup.Dir = ""
	cfg.Backup.Versioned = false

	cfg.Catalog.StrictMissingKeys = false

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
