// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger used by package localetree.
//
// workspace.RefreshLoggers rebinds it after logging is configured so that
// tree-level warnings land on the configured output.
var Logger = newLogger()

func newLogger() zerolog.Logger {
	return log.With().Str("sys", "localetree").Logger()
}
