// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"codeberg.org/loctool/loctool/localetree"
)

// LanguageSync is the per-language outcome of a sync run.
type LanguageSync struct {
	Lang    string
	Added   int  // key paths filled from the baseline
	Changed bool // whether the file was rewritten
	Err     error
}

// SyncReport aggregates the outcomes of one sync run.
type SyncReport struct {
	Languages []LanguageSync
}

// Failed counts the languages that could not be synced.
func (r SyncReport) Failed() int {
	n := 0

	for _, l := range r.Languages {
		if l.Err != nil {
			n++
		}
	}

	return n
}

// SyncAll fills every language's gaps from the baseline tree, rewriting only
// the files that change. Per-language failures are logged and skipped; a
// missing or malformed baseline aborts the run.
func (ws Workspace) SyncAll() (SyncReport, error) {
	baseline, err := ws.LoadTree(ws.Baseline)
	if err != nil {
		return SyncReport{}, fmt.Errorf("baseline %s: %w", ws.Baseline, err)
	}

	langs, err := ws.Languages()
	if err != nil {
		return SyncReport{}, err
	}

	var report SyncReport

	for _, lang := range langs {
		if lang == ws.Baseline {
			continue
		}

		outcome := ws.syncOne(lang, baseline)

		switch {
		case outcome.Err != nil:
			Logger.Error().Err(outcome.Err).Str("lang", lang).Msg("Sync failed")
		case outcome.Changed:
			Logger.Info().Str("lang", lang).Int("added", outcome.Added).Msg("Filled missing keys")
		}

		report.Languages = append(report.Languages, outcome)
	}

	return report, nil
}

func (ws Workspace) syncOne(lang string, baseline *localetree.Branch) LanguageSync {
	target, err := ws.LoadTree(lang)
	if err != nil {
		return LanguageSync{Lang: lang, Err: err}
	}

	merged := localetree.Sync(target, baseline)

	before, err := json.Marshal(target)
	if err != nil {
		return LanguageSync{Lang: lang, Err: err}
	}

	after, err := json.Marshal(merged)
	if err != nil {
		return LanguageSync{Lang: lang, Err: err}
	}

	// An already complete language keeps its file byte-identical.
	if bytes.Equal(before, after) {
		return LanguageSync{Lang: lang}
	}

	if err := ws.SaveTree(lang, merged); err != nil {
		return LanguageSync{Lang: lang, Err: err}
	}

	added := len(localetree.Flatten(merged)) - len(localetree.Flatten(target))

	return LanguageSync{Lang: lang, Added: added, Changed: true}
}

// LanguageCheck is the per-language outcome of a completeness check.
type LanguageCheck struct {
	Lang            string
	Missing         []string // baseline key paths absent from this language
	EntirelyMissing bool     // the translation file itself does not exist
	Err             error
}

// Complete reports whether the language needs no work.
func (c LanguageCheck) Complete() bool {
	return c.Err == nil && !c.EntirelyMissing && len(c.Missing) == 0
}

// CheckReport aggregates the outcomes of one completeness check.
type CheckReport struct {
	Languages []LanguageCheck
}

// Passed reports whether every language is complete. Builds gate on this.
func (r CheckReport) Passed() bool {
	for _, l := range r.Languages {
		if !l.Complete() {
			return false
		}
	}

	return true
}

// Check measures every language against the baseline tree. A language whose
// translation file does not exist is marked entirely missing; the run
// continues with the remaining languages either way.
func (ws Workspace) Check() (CheckReport, error) {
	baseline, err := ws.LoadTree(ws.Baseline)
	if err != nil {
		return CheckReport{}, fmt.Errorf("baseline %s: %w", ws.Baseline, err)
	}

	langs, err := ws.Languages()
	if err != nil {
		return CheckReport{}, err
	}

	var report CheckReport

	for _, lang := range langs {
		if lang == ws.Baseline {
			continue
		}

		report.Languages = append(report.Languages, ws.checkOne(lang, baseline))
	}

	return report, nil
}

func (ws Workspace) checkOne(lang string, baseline *localetree.Branch) LanguageCheck {
	target, err := ws.LoadTree(lang)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return LanguageCheck{Lang: lang, EntirelyMissing: true}
	case err != nil:
		return LanguageCheck{Lang: lang, Err: err}
	}

	return LanguageCheck{Lang: lang, Missing: localetree.MissingKeys(baseline, target)}
}

// LanguageUpgrade is the per-language outcome of a schema upgrade.
type LanguageUpgrade struct {
	Lang       string
	BackupPath string
	Err        error
}

// UpgradeReport aggregates the outcomes of one upgrade run.
type UpgradeReport struct {
	Languages []LanguageUpgrade
}

// Failed counts the languages that could not be upgraded.
func (r UpgradeReport) Failed() int {
	n := 0

	for _, l := range r.Languages {
		if l.Err != nil {
			n++
		}
	}

	return n
}

// UpgradeAll migrates every language, the baseline included, to the annotated
// leaf form, backing each file up before rewriting it. Per-language failures
// are logged and skipped.
func (ws Workspace) UpgradeAll(verified map[string]bool, policy BackupPolicy) (UpgradeReport, error) {
	langs, err := ws.Languages()
	if err != nil {
		return UpgradeReport{}, err
	}

	var report UpgradeReport

	for _, lang := range langs {
		outcome := ws.upgradeOne(lang, verified, policy)

		if outcome.Err != nil {
			Logger.Error().Err(outcome.Err).Str("lang", lang).Msg("Upgrade failed")
		} else {
			Logger.Info().Str("lang", lang).Str("backup", outcome.BackupPath).Msg("Upgraded translation file")
		}

		report.Languages = append(report.Languages, outcome)
	}

	return report, nil
}

func (ws Workspace) upgradeOne(lang string, verified map[string]bool, policy BackupPolicy) LanguageUpgrade {
	tree, err := ws.LoadTree(lang)
	if err != nil {
		return LanguageUpgrade{Lang: lang, Err: err}
	}

	upgraded := localetree.Upgrade(tree, verified)

	backup, err := ws.Backup(lang, policy)
	if err != nil {
		return LanguageUpgrade{Lang: lang, Err: err}
	}

	if err := ws.SaveTree(lang, upgraded); err != nil {
		return LanguageUpgrade{Lang: lang, BackupPath: backup, Err: err}
	}

	return LanguageUpgrade{Lang: lang, BackupPath: backup}
}
