// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Loccheck measures every language's translation file against the baseline and
exits non-zero when any language is incomplete. Build pipelines gate on it.

The report always covers every language, so one corrupt file never hides the
state of the rest.
*/
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/core/audit"
)

func main() {
	passed, err := run()
	if err != nil {
		log.Fatal().Err(err).Msg("Completeness check failed")
	}

	if !passed {
		os.Exit(1)
	}
}

func run() (bool, error) {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return false, fmt.Errorf("failed to load configuration: %w", err)
	}

	ws := config.Global.Workspace()

	report, err := ws.Check()
	if err != nil {
		return false, err
	}

	for _, l := range report.Languages {
		switch {
		case l.EntirelyMissing:
			fmt.Printf("⚠️ %s: translation file missing (%s)\n", l.Lang, ws.TreePath(l.Lang))
		case l.Err != nil:
			fmt.Printf("❌ %s: %v\n", l.Lang, l.Err)
		case len(l.Missing) > 0:
			fmt.Printf("❌ %s: %d missing keys\n", l.Lang, len(l.Missing))

			for _, path := range l.Missing {
				fmt.Printf("   - %s\n", path)
			}
		default:
			fmt.Printf("✅ %s: complete\n", l.Lang)
		}
	}

	return report.Passed(), nil
}
