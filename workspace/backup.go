// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package workspace

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"codeberg.org/loctool/loctool/core/idgen"
)

// BackupPolicy controls where pre-upgrade snapshots go and how they are
// named.
type BackupPolicy struct {
	// Dir is a destination directory for all backups. Empty keeps each
	// backup next to its translation file.
	Dir string

	// Versioned stamps every backup name with an ID instead of overwriting
	// one fixed snapshot per language.
	Versioned bool
}

// Backup copies a language's current translation file to its backup path and
// returns that path.
//
// With the zero policy the backup is a fixed sibling file,
// "translation.backup.json", and each run overwrites the previous snapshot.
// A versioned policy keeps every snapshot; a directory policy collects the
// backups of all languages in one place, prefixed with the language code.
func (ws Workspace) Backup(lang string, policy BackupPolicy) (string, error) {
	src := ws.TreePath(lang)

	data, err := os.ReadFile(src) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}

	if policy.Dir != "" {
		if err := os.MkdirAll(policy.Dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create backup directory: %w", err)
		}
	}

	dst := ws.backupPath(lang, policy)

	if err := atomic.WriteFile(dst, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return dst, nil
}

// backupPath derives the backup file name by splicing a marker, and for a
// versioned policy an ID, between the translation file's stem and extension.
func (ws Workspace) backupPath(lang string, policy BackupPolicy) string {
	ext := filepath.Ext(ws.File)
	stem := strings.TrimSuffix(ws.File, ext)

	name := stem + ".backup" + ext
	if policy.Versioned {
		name = stem + ".backup." + idgen.Make() + ext
	}

	if policy.Dir != "" {
		return filepath.Join(policy.Dir, lang+"."+name)
	}

	return filepath.Join(ws.Root, lang, name)
}
