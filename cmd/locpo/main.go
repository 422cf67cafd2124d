// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Locpo bridges locale trees and gettext tooling.

With -export it writes a POT template from the baseline tree: one entry per
translatable leaf, msgid set to the dotted key path, and the baseline text
carried in a "#." extracted comment for translators to work from.

With -import it applies a translated .po file to one language's tree. Every
baseline key path the .po translates overwrites the matching leaf; a .po
translation is human work, so annotated leaves come out verified. The tree is
backed up before it is rewritten.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/core/audit"
	"codeberg.org/loctool/loctool/localetree"
	"codeberg.org/loctool/loctool/workspace"
)

const (
	potDirPerm  = 0o755
	potFilePerm = 0o644
)

var (
	errNoMode    = errors.New("nothing to do: pass -export or -import")
	errBothModes = errors.New("-export and -import are mutually exclusive")
	errNoLang    = errors.New("-import requires -lang")
)

func main() {
	// Flags must exist before LoadConfig parses the command line.
	export := flag.Bool("export", false, "Write a POT template from the baseline tree.")
	output := flag.String("o", "po/loctool.pot", "Output file for -export.")
	importPath := flag.String("import", "", "Translated .po file to apply to one language.")
	lang := flag.String("lang", "", "Language code receiving the -import file.")

	if err := run(export, output, importPath, lang); err != nil {
		log.Fatal().Err(err).Msg("PO bridge failed")
	}
}

func run(export *bool, output, importPath, lang *string) error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ws := config.Global.Workspace()

	switch {
	case *export && *importPath != "":
		return errBothModes
	case *export:
		return runExport(ws, *output)
	case *importPath != "":
		if *lang == "" {
			return errNoLang
		}

		return runImport(ws, *importPath, *lang)
	default:
		return errNoMode
	}
}

// runExport walks the baseline tree in document order and writes one POT
// entry per translatable leaf.
func runExport(ws workspace.Workspace, outPath string) error {
	baseline, err := ws.LoadTree(ws.Baseline)
	if err != nil {
		return fmt.Errorf("baseline %s: %w", ws.Baseline, err)
	}

	var b strings.Builder

	writeHeader(&b, ws.Baseline)

	entries := 0

	localetree.Walk(baseline, func(path string, n *localetree.Node) {
		text, ok := leafText(n)
		if !ok {
			return
		}

		if entries > 0 {
			fmt.Fprintln(&b)
		}

		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(&b, "#. %s\n", line)
		}

		fmt.Fprintf(&b, "msgid %q\n", path)
		fmt.Fprintf(&b, "msgstr \"\"\n")

		entries++
	})

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, potDirPerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outPath, []byte(b.String()), potFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("✅ exported %d entries to %s\n", entries, outPath)

	return nil
}

// writeHeader emits a POT header.
func writeHeader(b *strings.Builder, baseline string) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: loctool %s\\n\"\n", config.BuildVersion)
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", time.Now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintf(b, "\"Language: %s\\n\"\n", baseline)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"X-Generator: loctool\n"`)
	fmt.Fprintln(b)
}

// runImport applies the translated entries of a .po file to one language's
// tree, then saves it with the usual backup.
func runImport(ws workspace.Workspace, poPath, lang string) error {
	data, err := os.ReadFile(poPath) // #nosec G304 -- Operator-supplied .po path
	if err != nil {
		return fmt.Errorf("po file %s: %w", poPath, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	translated := translatedEntries(po)

	baseline, err := ws.LoadTree(ws.Baseline)
	if err != nil {
		return fmt.Errorf("baseline %s: %w", ws.Baseline, err)
	}

	target, err := ws.LoadTree(lang)
	if err != nil {
		return fmt.Errorf("language %s: %w", lang, err)
	}

	applied := 0

	localetree.Walk(baseline, func(path string, n *localetree.Node) {
		if _, ok := leafText(n); !ok {
			return
		}

		text, ok := translated[path]
		if !ok {
			return
		}

		if applyTranslation(target, path, text) {
			applied++
		}
	})

	if applied == 0 {
		fmt.Printf("✅ %s: nothing to apply from %s\n", lang, poPath)

		return nil
	}

	backup, err := ws.Backup(lang, config.Global.BackupPolicy())
	if err != nil {
		return err
	}

	if err := ws.SaveTree(lang, target); err != nil {
		return err
	}

	fmt.Printf("✅ %s: applied %d translations (backup %s)\n", lang, applied, backup)

	return nil
}

// translatedEntries collects msgid to msgstr for every entry the .po actually
// translates.
func translatedEntries(po *gotext.Po) map[string]string {
	out := make(map[string]string)

	for id, tr := range po.GetDomain().GetTranslations() {
		if id == "" || !tr.IsTranslated() {
			continue
		}

		out[id] = tr.Get()
	}

	return out
}

// leafText returns the translatable text of a leaf, if it has one. Opaque
// values are not translatable and stay out of the round trip.
func leafText(n *localetree.Node) (string, bool) {
	switch n.Kind {
	case localetree.KindText:
		return n.Text, true
	case localetree.KindMessage:
		return n.Message.Text, true
	default:
		return "", false
	}
}

// applyTranslation overwrites the leaf at path with text, creating missing
// branches and leaves on the way, and reports whether the tree changed.
// Positions blocked by a non-branch parent or occupied by a subtree are
// skipped with a warning, never overwritten.
func applyTranslation(root *localetree.Branch, path, text string) bool {
	segments := strings.Split(path, ".")
	branch := root

	for _, key := range segments[:len(segments)-1] {
		child, ok := branch.Get(key)
		if !ok {
			next := localetree.NewBranch()
			branch.Set(key, &localetree.Node{Kind: localetree.KindBranch, Branch: next})
			branch = next

			continue
		}

		if child.Kind != localetree.KindBranch {
			log.Warn().Str("path", path).Msg("Translation blocked by a non-branch parent")

			return false
		}

		branch = child.Branch
	}

	key := segments[len(segments)-1]

	existing, ok := branch.Get(key)
	if !ok {
		branch.Set(key, &localetree.Node{
			Kind:    localetree.KindMessage,
			Message: localetree.Message{Text: text, HumanVerified: true},
		})

		return true
	}

	switch existing.Kind {
	case localetree.KindText:
		if existing.Text == text {
			return false
		}

		branch.Set(key, &localetree.Node{Kind: localetree.KindText, Text: text})

		return true
	case localetree.KindMessage:
		if existing.Message.Text == text && existing.Message.HumanVerified {
			return false
		}

		branch.Set(key, &localetree.Node{
			Kind:    localetree.KindMessage,
			Message: localetree.Message{Text: text, HumanVerified: true},
		})

		return true
	default:
		log.Warn().
			Str("path", path).
			Str("kind", existing.Kind.String()).
			Msg("Translation target is not a text leaf")

		return false
	}
}
