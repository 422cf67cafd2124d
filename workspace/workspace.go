// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"

	"codeberg.org/loctool/loctool/localetree"
)

// Logger is the logger used by package workspace.
var Logger = log.With().Str("sys", "workspace").Logger()

// RefreshLoggers rebinds the package loggers of the workspace layer so they
// pick up the output configured since process start. Call it once after
// logging setup, before constructing workspaces.
func RefreshLoggers() {
	Logger = log.With().Str("sys", "workspace").Logger()
	localetree.Logger = log.With().Str("sys", "localetree").Logger()
}

// Workspace locates the per-language translation files under a locales root.
type Workspace struct {
	// Root is the locales directory, one subdirectory per language.
	Root string

	// File is the translation file name inside each language directory,
	// for example "translation.json".
	File string

	// Baseline is the reference language code, for example "en".
	Baseline string
}

// New builds a workspace.
func New(root, file, baseline string) Workspace {
	return Workspace{Root: root, File: file, Baseline: baseline}
}

// Languages returns the language codes under the root, one per subdirectory,
// in lexical order. Stray files next to the language directories are ignored.
func (ws Workspace) Languages() ([]string, error) {
	entries, err := os.ReadDir(ws.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales root: %w", err)
	}

	var langs []string

	for _, entry := range entries {
		if entry.IsDir() {
			langs = append(langs, entry.Name())
		}
	}

	return langs, nil
}

// TreePath returns the path of a language's translation file.
func (ws Workspace) TreePath(lang string) string {
	return filepath.Join(ws.Root, lang, ws.File)
}

// LoadTree reads and parses a language's translation file.
func (ws Workspace) LoadTree(lang string) (*localetree.Branch, error) {
	path := ws.TreePath(lang)

	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	root := localetree.NewBranch()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return root, nil
}

// SaveTree writes a language's translation file, two-space indented with a
// trailing newline for diff-friendly review, via a temp file renamed into
// place.
func (ws Workspace) SaveTree(lang string, root *localetree.Branch) error {
	path := ws.TreePath(lang)

	data, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format %s: %w", path, err)
	}

	out.WriteByte('\n')

	if err := atomic.WriteFile(path, &out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
