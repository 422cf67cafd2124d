// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"reflect"
	"testing"
)

/*
TestLoadConfig focuses on verifying main functionality (e.g. source precedence
and validation), and *shouldn't* need exhaustive scenarios.

No t.Parallel here: t.Setenv and the process-global flag and logger state rule
it out.
*/

// TestLoadConfig is a test function that verifies the behavior of the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string            // Description of the test case
		env     map[string]string // Name of the environment variable and its value
		wantErr bool              // Whether an error is expected
	}{
		{
			name:    "Defaults only",
			env:     map[string]string{},
			wantErr: false,
		},
		{
			name: "Environment overrides",
			env: map[string]string{
				"LOCTOOL_LOCALES_ROOT":      "testdata/locales",
				"LOCTOOL_LOCALES_BASELINE":  "de",
				"LOCTOOL_VERIFIED_PREFIXES": "menu_, option_, dialog_",
			},
			wantErr: false,
		},
		{
			name: "Invalid log level",
			env: map[string]string{
				"LOCTOOL_LOG_LEVEL": "loud",
			},
			wantErr: true,
		},
		{
			name: "Invalid baseline tag",
			env: map[string]string{
				"LOCTOOL_LOCALES_BASELINE": "not a tag",
			},
			wantErr: true,
		},
		{
			name: "Translation file without extension",
			env: map[string]string{
				"LOCTOOL_LOCALES_FILE": "translation",
			},
			wantErr: true,
		},
		{
			name: "Invalid boolean",
			env: map[string]string{
				"LOCTOOL_BACKUP_VERSIONED": "maybe",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			config := &Config{}

			err := config.LoadConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)

				return
			}

			if tt.wantErr {
				return
			}

			// Environment values land in the config, defaults fill the rest.
			if want := tt.env["LOCTOOL_LOCALES_ROOT"]; want != "" && config.Locales.Root != want {
				t.Errorf("LoadConfig() Root = %v, want %v", config.Locales.Root, want)
			}

			if config.Locales.File != "translation.json" {
				t.Errorf("LoadConfig() File = %v, want translation.json", config.Locales.File)
			}

			if config.Sheet.Path == "" {
				t.Error("LoadConfig() Sheet.Path is empty")
			}

			if want := tt.env["LOCTOOL_VERIFIED_PREFIXES"]; want != "" {
				if got := config.Sheet.VerifiedPrefixes; !reflect.DeepEqual(got, []string{"menu_", "option_", "dialog_"}) {
					t.Errorf("LoadConfig() VerifiedPrefixes = %v", got)
				}
			}
		})
	}
}

func TestConfigBuildsWorkspace(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	ws := cfg.Workspace()
	if ws.Root != "locales" || ws.File != "translation.json" || ws.Baseline != "en" {
		t.Errorf("Workspace() = %+v", ws)
	}

	cfg.Backup.Dir = "backups"
	cfg.Backup.Versioned = true

	policy := cfg.BackupPolicy()
	if policy.Dir != "backups" || !policy.Versioned {
		t.Errorf("BackupPolicy() = %+v", policy)
	}
}
