// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"

	"codeberg.org/loctool/loctool/workspace"
)

var (
	// viewsByTag maps canonical BCP 47 tags, for example "en", "ja", "pt-BR",
	// to a read-only view over that locale's translation file.
	viewsByTag map[string]gjson.Result

	// supportedTags holds the list of BCP 47 tags for which a locale was successfully loaded.
	supportedTags []language.Tag

	// matcher is a private [language.Matcher] derived from the loaded locales.
	matcher language.Matcher
)

var errBaselineNotLoaded = errors.New("baseline locale could not be loaded")

// Setup initialises package catalog by loading the translation files of every
// language in the workspace and constructing a language matcher.
//
// A language directory whose name is not a valid BCP 47 tag, or whose
// translation file is unreadable or malformed, is logged and skipped; the
// workspace tools repair such languages, the catalog merely serves the rest.
// The baseline language must load, since it acts as the default fallback for
// both matching and lookups.
//
// Calling Setup again replaces the previously loaded locales and matcher.
func Setup(ws workspace.Workspace) error {
	Logger = log.With().Str("sys", "catalog").Logger()

	viewsByTag = make(map[string]gjson.Result)
	supportedTags = nil
	matcher = nil

	langs, err := ws.Languages()
	if err != nil {
		return fmt.Errorf("failed to discover languages: %w", err)
	}

	var tagsList []language.Tag

	for _, lang := range langs {
		t, err := language.Parse(lang)
		if err != nil {
			Logger.Warn().Err(err).Str("dir", lang).Msg("Skipping invalid locale directory")

			continue
		}

		path := ws.TreePath(lang)

		data, err := os.ReadFile(path) // #nosec G304
		if err != nil {
			Logger.Warn().Err(err).Str("locale", lang).Msg("Skipping locale without a readable translation file")

			continue
		}

		if !gjson.ValidBytes(data) {
			Logger.Warn().Str("locale", lang).Str("file", path).Msg("Skipping locale with a malformed translation file")

			continue
		}

		canonical := t.String()

		view := gjson.ParseBytes(data)
		viewsByTag[canonical] = view

		tagsList = append(tagsList, t)

		Logger.Info().
			Str("locale", canonical).
			Int("keys", countLeaves(view)).
			Msg("Loaded locale")
	}

	baseTag = language.Make(ws.Baseline)

	if _, ok := viewsByTag[baseTag.String()]; !ok {
		return fmt.Errorf("%w: %s", errBaselineNotLoaded, ws.Baseline)
	}

	// Build a private matcher from the loaded languages.
	// baseTag is first to make it the default fallback for matching.
	all := make([]language.Tag, 0, len(tagsList))

	all = append(all, baseTag)

	// Sort loaded tags by their canonical string.
	sort.Slice(tagsList, func(i, j int) bool { return tagsList[i].String() < tagsList[j].String() })

	for _, t := range tagsList {
		if t == baseTag {
			continue
		}

		all = append(all, t)
	}

	matcher = language.NewMatcher(all)
	supportedTags = all

	return nil
}

// countLeaves counts the translatable positions in a view: every value that
// is not a plain object, with an annotated message counting as one.
func countLeaves(res gjson.Result) int {
	n := 0

	res.ForEach(func(_, value gjson.Result) bool {
		switch {
		case messageShape(value):
			n++
		case value.IsObject():
			n += countLeaves(value)
		default:
			n++
		}

		return true
	})

	return n
}
