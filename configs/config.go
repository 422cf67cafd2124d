// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"

	"codeberg.org/loctool/loctool/workspace"
)

// Global exposes the loctool configuration.
var Global Config

// Config holds the loctool configuration.
type Config struct {
	Build buildInfo `yaml:"-"`

	Locales struct {
		Root     string `env:"LOCTOOL_LOCALES_ROOT,overwrite"     yaml:"root"`
		File     string `env:"LOCTOOL_LOCALES_FILE,overwrite"     yaml:"file"`
		Baseline string `env:"LOCTOOL_LOCALES_BASELINE,overwrite" yaml:"baseline"`
	} `yaml:"locales"`

	Sheet struct {
		Path             string   `env:"LOCTOOL_SHEET_PATH,overwrite"        yaml:"path"`
		VerifiedPrefixes []string `env:"LOCTOOL_VERIFIED_PREFIXES,overwrite" yaml:"verifiedPrefixes"`
	} `yaml:"sheet"`

	Backup struct {
		Dir       string `env:"LOCTOOL_BACKUP_DIR,overwrite"       yaml:"dir"`
		Versioned bool   `env:"LOCTOOL_BACKUP_VERSIONED,overwrite" yaml:"versioned"`
	} `yaml:"backup"`

	Catalog struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"LOCTOOL_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"catalog"`

	Log struct {
		Level   string   `env:"LOCTOOL_LOG_LEVEL,overwrite"   yaml:"logLevel"`
		Outputs []string `env:"LOCTOOL_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"LOCTOOL_LOG_FORMAT,overwrite"  yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *Config) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (LOCTOOL_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		// Command-line flag has the highest precedence.
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("LOCTOOL_CONFIGFILE"); envVar != "" {
		// Environment variable is next.
		configFilePath = envVar
	} else {
		// If neither flag nor env var was provided, use the default value
		// from the flag ("./loctool.yaml").
		configFilePath = parsedConfigFlagValue
		// Then, perform a fallback check for "./loctool.yml".
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./loctool.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

// Workspace builds the locales workspace the configuration describes. It
// rebinds the workspace loggers first so they honor the configured output.
func (cfg *Config) Workspace() workspace.Workspace {
	workspace.RefreshLoggers()

	return workspace.New(cfg.Locales.Root, cfg.Locales.File, cfg.Locales.Baseline)
}

// BackupPolicy builds the backup policy the configuration describes.
func (cfg *Config) BackupPolicy() workspace.BackupPolicy {
	return workspace.BackupPolicy{
		Dir:       cfg.Backup.Dir,
		Versioned: cfg.Backup.Versioned,
	}
}
