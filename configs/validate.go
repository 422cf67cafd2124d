// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/text/language"
)

// validation errors.
var (
	errLocalesRootRequired = errors.New("locales.root is required")
	errLocalesFileRequired = errors.New("locales.file is required")
	errLocalesFileNeedsExt = errors.New("locales.file needs a file extension for backup naming")
	errBaselineRequired    = errors.New("locales.baseline is required")
	errSheetPathRequired   = errors.New("sheet.path is required")
	errInvalidLogLevel     = errors.New("invalid log.logLevel value")
	errInvalidLogFormat    = errors.New("invalid log.logFormat value")
)

// validate checks the configuration after all sources are applied.
func (cfg *Config) validate() error {
	if cfg.Locales.Root == "" {
		return errLocalesRootRequired
	}

	if cfg.Locales.File == "" {
		return errLocalesFileRequired
	}

	// Backup names splice a marker between the file's stem and extension.
	if filepath.Ext(cfg.Locales.File) == "" {
		return errLocalesFileNeedsExt
	}

	if cfg.Locales.Baseline == "" {
		return errBaselineRequired
	}

	if _, err := language.Parse(cfg.Locales.Baseline); err != nil {
		return fmt.Errorf("invalid locales.baseline %q: %w", cfg.Locales.Baseline, err)
	}

	if cfg.Sheet.Path == "" {
		return errSheetPathRequired
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "console", "json":
		// valid
	default:
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
