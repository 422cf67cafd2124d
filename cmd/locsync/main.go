// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Locsync fills the gaps in every language's translation file from the baseline
tree. Languages that are already complete keep their files byte-identical.
*/
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/core/audit"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Sync failed")
	}
}

func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	report, err := config.Global.Workspace().SyncAll()
	if err != nil {
		return err
	}

	for _, l := range report.Languages {
		switch {
		case l.Err != nil:
			fmt.Printf("❌ %s: %v\n", l.Lang, l.Err)
		case l.Changed:
			fmt.Printf("✅ %s: filled %d missing keys\n", l.Lang, l.Added)
		default:
			fmt.Printf("✅ %s: already complete\n", l.Lang)
		}
	}

	// Failures are isolated per language; the completeness check is the
	// build gate, so a partial sync still exits zero.
	if failed := report.Failed(); failed > 0 {
		log.Warn().Int("failed", failed).Msg("Some languages could not be synced")
	}

	return nil
}
