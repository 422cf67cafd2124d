// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Locupgrade migrates every translation file, the baseline included, from plain
string leaves to the annotated {text, humanVerified} form. Each file is backed
up before it is rewritten, and the migration is safe to re-run.

Which keys count as human verified is read from the master translation sheet:
every data row whose key carries one of the configured prefixes marks that key
as verified.
*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/core/audit"
	"codeberg.org/loctool/loctool/csvtable"
)

func main() {
	failed, err := run()
	if err != nil {
		log.Fatal().Err(err).Msg("Upgrade failed")
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func run() (int, error) {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return 0, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg := &config.Global

	data, err := os.ReadFile(cfg.Sheet.Path) // #nosec G304 -- Operator-configured sheet path
	if err != nil {
		return 0, fmt.Errorf("master sheet %s: %w", cfg.Sheet.Path, err)
	}

	verified := csvtable.VerifiedKeys(csvtable.ParseTable(string(data)), cfg.Sheet.VerifiedPrefixes)

	log.Info().
		Int("keys", len(verified)).
		Str("sheet", cfg.Sheet.Path).
		Msg("Collected verified keys")

	report, err := cfg.Workspace().UpgradeAll(verified, cfg.BackupPolicy())
	if err != nil {
		return 0, err
	}

	for _, l := range report.Languages {
		if l.Err != nil {
			fmt.Printf("❌ %s: %v\n", l.Lang, l.Err)

			continue
		}

		fmt.Printf("✅ %s: upgraded (backup %s)\n", l.Lang, l.BackupPath)
	}

	return report.Failed(), nil
}
