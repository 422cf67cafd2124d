// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package workspace discovers and transforms the per-language translation files
of a locales directory.

# Layout

A workspace is a root directory with one subdirectory per language, each
holding a translation file of the same name:

	locales/
	  en/translation.json
	  de/translation.json
	  fr/translation.json

Every subdirectory of the root counts as a language; a language without its
translation file is reported as entirely missing rather than skipped. One
language is the baseline, the reference tree every other language is measured
and filled against.

# Batch operations

SyncAll, Check and UpgradeAll iterate over all discovered languages and isolate
failures per language: a corrupt file is logged and skipped, the run
continues, and the per-language outcomes are aggregated into a report for the
caller to print and turn into an exit code. Only a missing or malformed
baseline aborts a run, since nothing can be measured without it.

All writes go through a temp-file-and-rename, so an interrupted run never
leaves a truncated translation file behind.
*/
package workspace
