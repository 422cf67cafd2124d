// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"bytes"
	"context"
	"log"
	"strings"
	"sync"
	"text/template"

	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
)

// templateCache caches compiled templates per unique template text.
var templateCache sync.Map // key: text, value: *template.Template

type Vars map[string]any

// Key is a dotted path into the translation tree, for example
// "ui.menu.start".
type Key string

// Text translates key for the locale carried by ctx. If key-value pairs are
// provided, the text is formatted using text/template-style named
// placeholders.
//
// A key the matched locale lacks renders with the baseline text, or visibly
// wrapped if strict mode is enabled.
func Text(ctx context.Context, key Key, kv ...any) string {
	return translate(ctx, key, v(kv...))
}

// Text translates k for the locale carried by ctx, like [Text].
func (k Key) Text(ctx context.Context, kv ...any) string {
	return translate(ctx, k, v(kv...))
}

// translate performs the underlying lookup and formatting.
func translate(ctx context.Context, key Key, vars Vars) string {
	view, matched := resolveView(TagFrom(ctx))

	text, found := lookup(view, key)
	if !found {
		text = fallbackText(key)

		if strictMissingKeys() {
			logMissingOnce(strippedTagString(matched), string(key))

			text = "⟦" + text + "⟧"
		}
	}

	return render(matched, text, vars)
}

// lookup reads the text at a key path from one locale view. An annotated
// message yields its inner text; a branch or an opaque value is not
// translatable text and counts as missing.
func lookup(view gjson.Result, key Key) (string, bool) {
	res := view.Get(string(key))

	switch {
	case !res.Exists():
		return "", false
	case res.Type == gjson.String:
		return res.String(), true
	case messageShape(res):
		return res.Get("text").String(), true
	}

	return "", false
}

// messageShape reports whether res is exactly the annotated message object,
// {text: string, humanVerified: bool}.
func messageShape(res gjson.Result) bool {
	if !res.IsObject() {
		return false
	}

	m := res.Map()
	if len(m) != 2 {
		return false
	}

	text, ok := m["text"]
	if !ok || text.Type != gjson.String {
		return false
	}

	verified, ok := m["humanVerified"]

	return ok && (verified.Type == gjson.True || verified.Type == gjson.False)
}

// fallbackText returns the baseline text for key, or the key path itself when
// the baseline lacks it too.
func fallbackText(key Key) string {
	if base, ok := viewsByTag[baseTag.String()]; ok {
		if text, found := lookup(base, key); found {
			return text
		}
	}

	return string(key)
}

// render formats s as a text/template using the provided data.
func render(locale language.Tag, s string, data Vars) string {
	// Skip template execution for plain texts; when the text does contain
	// markers, `missingkey=error` surfaces absent substitutions.
	if !strings.Contains(s, "{{") {
		return s
	}

	key := s

	var tmpl *template.Template
	if t, ok := templateCache.Load(key); ok {
		tmpl = t.(*template.Template)
	} else {
		var err error

		tmpl, err = template.New("msg").Option("missingkey=error").Parse(s)
		if err != nil {
			if strictMissingKeys() {
				return "⟦" + s + "⟧"
			}

			log.Printf("catalog: template parse error for locale %s: %v, text: %q", locale, err, s)

			return s
		}

		templateCache.Store(key, tmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		if strictMissingKeys() {
			return "⟦" + s + "⟧"
		}

		log.Printf("catalog: template execute error for locale %s: %v, text: %q", locale, err, s)

		return s
	}

	return buf.String()
}

// resolveView matches t to one of the loaded locales and returns the
// corresponding view and the matched tag.
// If no matcher is installed, it returns an empty view and baseTag.
func resolveView(t language.Tag) (gjson.Result, language.Tag) {
	if matcher == nil {
		return gjson.Result{}, baseTag
	}

	matched, idx := language.MatchStrings(matcher, t.String())

	// The matched tag can carry attributes of the request, for example a
	// region; the index names the supported tag that holds the loaded view.
	return viewsByTag[supportedTags[idx].String()], matched
}

// v builds Vars from alternating key, value pairs.
// Panics on programmer error.
func v(kv ...any) Vars {
	if len(kv)%2 != 0 {
		panic("catalog.v: odd number of arguments, want key, value pairs")
	}

	m := make(Vars, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("catalog.v: key must be string")
		}

		m[k] = kv[i+1]
	}

	return m
}
