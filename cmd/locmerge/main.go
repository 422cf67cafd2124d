// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Locmerge splices a single-language CSV export into the master translation
sheet as a new column.

The incoming file uses the master layout: the header row names the language
code in its second field, and data rows map key to translated text. The column
lands at the 1-based position given with -at, or at the end when -at is
omitted. The master sheet is rewritten in place.
*/
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/core/audit"
	"codeberg.org/loctool/loctool/csvtable"
)

var errNoIncoming = errors.New("missing required -incoming flag")

func main() {
	// Flags must exist before LoadConfig parses the command line.
	incomingPath := flag.String("incoming", "", "Path to the single-language CSV export to merge.")
	insertAt := flag.Int("at", 0, "1-based column position for the new language; 0 appends.")
	displayName := flag.String("name", "", "Display name for the new column; defaults to the language code.")

	if err := run(incomingPath, insertAt, displayName); err != nil {
		log.Fatal().Err(err).Msg("Merge failed")
	}
}

func run(incomingPath *string, insertAt *int, displayName *string) error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if *incomingPath == "" {
		return errNoIncoming
	}

	masterPath := config.Global.Sheet.Path

	masterData, err := os.ReadFile(masterPath) // #nosec G304 -- Operator-configured sheet path
	if err != nil {
		return fmt.Errorf("master sheet %s: %w", masterPath, err)
	}

	incomingData, err := os.ReadFile(*incomingPath) // #nosec G304 -- Operator-supplied export path
	if err != nil {
		return fmt.Errorf("incoming sheet %s: %w", *incomingPath, err)
	}

	master := csvtable.ParseTable(string(masterData))
	incoming := csvtable.ParseTable(string(incomingData))

	// Appending means inserting right after the current last column.
	at := *insertAt
	if at == 0 && len(master.Rows) > 0 && master.Rows[0] != nil {
		at = len(master.Rows[0])
	}

	name := *displayName
	if name == "" {
		name = incomingCode(incoming)
	}

	merged, err := csvtable.MergeLanguageColumn(master, incoming, at, name)
	if err != nil {
		return err
	}

	out := merged.Format()
	if err := atomic.WriteFile(masterPath, bytes.NewReader([]byte(out))); err != nil {
		return fmt.Errorf("writing master sheet %s: %w", masterPath, err)
	}

	fmt.Printf("✅ merged %s into %s at column %d\n", incomingCode(incoming), masterPath, at)

	return nil
}

// incomingCode reads the language code out of the export's header row, or
// returns an empty string when the header is not there to read. The merge
// itself re-validates the header and reports the real error.
func incomingCode(incoming csvtable.Table) string {
	if len(incoming.Rows) == 0 || len(incoming.Rows[0]) < 2 {
		return ""
	}

	return incoming.Rows[0][1]
}
