// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/workspace"
)

/*
The catalog state is package-global and every test installs its own workspace
via Setup, so these tests run sequentially.
*/

// setupWorkspace creates a locales root with one translation file per entry
// and loads it into the catalog.
func setupWorkspace(t *testing.T, files map[string]string) {
	t.Helper()

	root := t.TempDir()

	for lang, content := range files {
		dir := filepath.Join(root, lang)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(filepath.Join(dir, "translation.json"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := Setup(workspace.New(root, "translation.json", "en")); err != nil {
		t.Fatal(err)
	}
}

func TestTextResolvesLocale(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{"ui":{"hello":"Hello"}}`,
		"fr": `{"ui":{"hello":"Bonjour"}}`,
	})

	ctx := WithTag(context.Background(), language.Make("fr"))
	if got := Text(ctx, "ui.hello"); got != "Bonjour" {
		t.Errorf("Text(fr) = %q, want Bonjour", got)
	}

	// Without a tag in the context the baseline serves.
	if got := Text(context.Background(), "ui.hello"); got != "Hello" {
		t.Errorf("Text() = %q, want Hello", got)
	}

	// A regional variant matches its parent locale.
	ctx = WithTag(context.Background(), language.Make("fr-CA"))
	if got := Text(ctx, "ui.hello"); got != "Bonjour" {
		t.Errorf("Text(fr-CA) = %q, want Bonjour", got)
	}
}

func TestTextFallsBackToBaseline(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{"ui":{"hello":"Hello","bye":"Bye"}}`,
		"fr": `{"ui":{"hello":"Bonjour"}}`,
	})

	ctx := WithTag(context.Background(), language.Make("fr"))
	if got := Text(ctx, "ui.bye"); got != "Bye" {
		t.Errorf("Text() = %q, want the baseline text", got)
	}
}

func TestTextMissingEverywhere(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{"ui":{"hello":"Hello"}}`,
	})

	if got := Text(context.Background(), "ui.nope"); got != "ui.nope" {
		t.Errorf("Text() = %q, want the key path", got)
	}
}

func TestTextReadsAnnotatedMessages(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{
			"ui": {
				"start": {"text": "Start", "humanVerified": true},
				"text": {"text": "x", "other": "y"}
			}
		}`,
	})

	if got := Text(context.Background(), "ui.start"); got != "Start" {
		t.Errorf("Text() = %q, want the annotated text", got)
	}

	// An object that merely contains a "text" member is a branch, not a
	// message, and yields no text.
	if got := Text(context.Background(), "ui.text"); got != "ui.text" {
		t.Errorf("Text() = %q, want the key path", got)
	}
}

func TestTextRendersPlaceholders(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{"greet":"Hello, {{.Name}}!"}`,
	})

	if got := Text(context.Background(), "greet", "Name", "Ada"); got != "Hello, Ada!" {
		t.Errorf("Text() = %q", got)
	}
}

func TestTextStrictMode(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{"ui":{"hello":"Hello"}}`,
		"fr": `{}`,
	})

	config.Global.Catalog.StrictMissingKeys = true
	defer func() { config.Global.Catalog.StrictMissingKeys = false }()

	// The baseline text still serves, visibly wrapped.
	ctx := WithTag(context.Background(), language.Make("fr"))
	if got := Text(ctx, "ui.hello"); got != "⟦Hello⟧" {
		t.Errorf("Text() = %q, want the wrapped baseline text", got)
	}

	if got := Text(ctx, "ui.nope"); got != "⟦ui.nope⟧" {
		t.Errorf("Text() = %q, want the wrapped key path", got)
	}
}

func TestKeyText(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{"ui":{"hello":"Hello"}}`,
	})

	if got := Key("ui.hello").Text(context.Background()); got != "Hello" {
		t.Errorf("Key.Text() = %q, want Hello", got)
	}
}

func TestLanguages(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{}`,
		"fr": `{}`,
		"de": `{}`,
	})

	tags := Languages()

	got := make([]string, len(tags))
	for i, tag := range tags {
		got[i] = tag.String()
	}

	if len(got) != 3 || got[0] != "de" || got[1] != "en" || got[2] != "fr" {
		t.Errorf("Languages() = %v", got)
	}
}

func TestMatch(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en": `{}`,
		"fr": `{}`,
	})

	if got := Match("fr-CA"); got.String() != "fr" {
		t.Errorf("Match(fr-CA) = %s, want fr", got)
	}

	// An unknown preference falls back to the baseline.
	if got := Match("xx"); got.String() != "en" {
		t.Errorf("Match(xx) = %s, want en", got)
	}
}

func TestSetupRequiresBaseline(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "fr"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Setup(workspace.New(root, "translation.json", "en")); err == nil {
		t.Error("Setup() without a baseline: expected error, got nil")
	}
}

func TestSetupSkipsBrokenLocales(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"en":          `{"a":"x"}`,
		"fr":          `{"broken`,
		"not a tag +": `{}`,
	})

	tags := Languages()
	if len(tags) != 1 || tags[0].String() != "en" {
		t.Errorf("Languages() = %v, want only en", tags)
	}
}
