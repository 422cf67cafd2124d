// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Lockeys statically checks a Go codebase against the baseline tree: every
constant key that flows into a catalog lookup must exist in the baseline, or
the scan exits non-zero. Baseline key paths that no code references are
reported as stale, advisory only, since keys can also be built at runtime.

The scan finds constant strings flowing into catalog.Key conversions, into
parameters of type catalog.Key, and into composite literals holding
catalog.Key elements, fields, or map keys. The catalog package is recognised
by shape, a package named "catalog" defining a Key type whose underlying type
is string, so vendored or forked import paths still match.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"

	config "codeberg.org/loctool/loctool/configs"
	"codeberg.org/loctool/loctool/core/audit"
	"codeberg.org/loctool/loctool/localetree"
)

var errLoadPackages = errors.New("failed to load packages due to errors")

type ref struct {
	file string
	line int
}

// extractor holds the shared state and context for AST analysis within a package.
type extractor struct {
	refs        map[string][]ref
	projectRoot string
	fset        *token.FileSet
	info        *types.Info
	catalogPkgs map[string]struct{}
}

func main() {
	// Flags must exist before LoadConfig parses the command line.
	pattern := flag.String("pkgs", "./...", "Package pattern to scan.")

	missing, err := run(pattern)
	if err != nil {
		log.Fatal().Err(err).Msg("Key scan failed")
	}

	if missing > 0 {
		os.Exit(1)
	}
}

func run(pattern *string) (int, error) {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return 0, fmt.Errorf("failed to load configuration: %w", err)
	}

	ws := config.Global.Workspace()

	baseline, err := ws.LoadTree(ws.Baseline)
	if err != nil {
		return 0, fmt.Errorf("baseline %s: %w", ws.Baseline, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return 0, fmt.Errorf("failed to get working directory: %w", err)
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, *pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to load packages: %w", err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		return 0, errLoadPackages
	}

	refs := extractRefs(pkgs, findProjectRoot(wd), findCatalogPkgPaths(pkgs))

	return report(baseline, refs), nil
}

// report prints every key used in code but absent from the baseline together
// with its references, then the stale baseline paths, and returns the number
// of missing keys.
func report(baseline *localetree.Branch, refs map[string][]ref) int {
	baselinePaths := localetree.Flatten(baseline)

	inBaseline := make(map[string]bool, len(baselinePaths))
	for _, path := range baselinePaths {
		inBaseline[path] = true
	}

	used := make([]string, 0, len(refs))
	for k := range refs {
		used = append(used, k)
	}

	sort.Strings(used)

	missing := 0

	for _, k := range used {
		if inBaseline[k] {
			continue
		}

		missing++

		fmt.Printf("❌ %s: not in baseline\n", k)

		rs := refs[k]
		sort.Slice(rs, func(i, j int) bool {
			if rs[i].file != rs[j].file {
				return rs[i].file < rs[j].file
			}

			return rs[i].line < rs[j].line
		})

		for _, r := range rs {
			fmt.Printf("   - %s:%d\n", r.file, r.line)
		}
	}

	stale := 0

	for _, path := range baselinePaths {
		if _, ok := refs[path]; !ok {
			stale++

			fmt.Printf("⚠️ %s: never referenced\n", path)
		}
	}

	if missing == 0 {
		fmt.Printf("✅ all %d referenced keys exist in the baseline (%d stale)\n", len(used), stale)
	}

	return missing
}

// extractRefs traverses all Go source files in the given packages, looking
// for catalog key usages to extract.
func extractRefs(pkgs []*packages.Package, projectRoot string, catalogPkgPaths map[string]struct{}) map[string][]ref {
	refs := map[string][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		// Create an extractor with the context for this package's files.
		e := &extractor{
			refs:        refs,
			projectRoot: projectRoot,
			fset:        p.Fset,
			info:        p.TypesInfo,
			catalogPkgs: catalogPkgPaths,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				switch x := n.(type) {
				case *ast.CallExpr:
					e.handleCallExpr(x)
				case *ast.CompositeLit:
					e.handleCompositeLit(x)
				}

				return true
			})
		}
	}

	return refs
}

// findCatalogPkgPaths returns the set of package paths in this build that
// define the catalog package with a Key type whose underlying type is string.
// This lets us require that matched conversions and parameters come from the
// catalog package, regardless of how it is imported or aliased.
func findCatalogPkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name != "catalog" || p.Types == nil {
			continue
		}

		obj := p.Types.Scope().Lookup("Key")

		tn, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		basic, ok := named.Underlying().(*types.Basic)
		if ok && basic.Kind() == types.String {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

// constString evaluates expr to a constant string if possible using types.Info.
// Handles string literals, const identifiers, and constant expressions like "a" + "b".
// Non-constant expressions return false.
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

// isKeyNamedType reports whether t is exactly the named type catalog.Key,
// with package path present in catalogPkgs.
// Accepts both direct types and type aliases that resolve to catalog.Key.
func isKeyNamedType(t types.Type, catalogPkgs map[string]struct{}) bool {
	// For a type alias, the TypeName.Type() is the aliased type, so this check
	// still sees the real named type object behind the alias.
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	if _, ok := catalogPkgs[obj.Pkg().Path()]; !ok {
		return false
	}

	return obj.Name() == "Key"
}

// handleCompositeLit inspects composite literals to find implicit conversions to catalog.Key.
func (e *extractor) handleCompositeLit(x *ast.CompositeLit) {
	tv, ok := e.info.Types[x]
	if !ok || tv.Type == nil {
		return
	}

	// Unwrap one level of pointer so &T{...} is treated as T{...}.
	t := tv.Type
	if p, ok := t.Underlying().(*types.Pointer); ok && p.Elem() != nil {
		t = p.Elem()
	}

	switch u := t.Underlying().(type) {
	case *types.Map:
		keyIsK := isKeyNamedType(u.Key(), e.catalogPkgs)

		valIsK := isKeyNamedType(u.Elem(), e.catalogPkgs)
		if !keyIsK && !valIsK {
			return
		}

		for _, elt := range x.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}

			if keyIsK {
				if msg, ok := constString(e.info, kv.Key); ok {
					e.addRef(kv.Key.Pos(), msg)
				}
			}

			if valIsK {
				if msg, ok := constString(e.info, kv.Value); ok {
					e.addRef(kv.Value.Pos(), msg)
				}
			}
		}

	case *types.Slice, *types.Array:
		var elemType types.Type
		if s, ok := u.(*types.Slice); ok {
			elemType = s.Elem()
		} else {
			// If not a slice, it must be an array due to the case statement.
			elemType = u.(*types.Array).Elem()
		}

		if !isKeyNamedType(elemType, e.catalogPkgs) {
			return
		}

		for _, elt := range x.Elts {
			if msg, ok := constString(e.info, elt); ok {
				e.addRef(elt.Pos(), msg)
			}
		}

	case *types.Struct:
		// To handle both keyed and positional literals, we first map field names to their types.
		// Then, for keyed elements we look up the type by name. For positional elements, we
		// rely on the declared field order.
		fieldTypes := make(map[string]types.Type, u.NumFields())
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)

			fieldTypes[f.Name()] = f.Type()
		}

		for i, elt := range x.Elts {
			// Keyed field: FieldName: "..."
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				if id, ok := kv.Key.(*ast.Ident); ok {
					if ft, ok := fieldTypes[id.Name]; ok && isKeyNamedType(ft, e.catalogPkgs) {
						if msg, ok := constString(e.info, kv.Value); ok {
							e.addRef(kv.Value.Pos(), msg)
						}
					}
				}

				continue
			}

			// Positional field: rely on declared field order.
			if i < u.NumFields() {
				ft := u.Field(i).Type()
				if isKeyNamedType(ft, e.catalogPkgs) {
					if msg, ok := constString(e.info, elt); ok {
						e.addRef(elt.Pos(), msg)
					}
				}
			}
		}
	}
}

// handleCallExpr inspects function calls and type conversions to find catalog keys.
func (e *extractor) handleCallExpr(x *ast.CallExpr) {
	// Case 1: Type conversion, e.g., catalog.Key("ui.menu.start").
	// A call expression where x.Fun is a type is a type conversion.
	if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 && isKeyNamedType(tv.Type, e.catalogPkgs) {
			if msg, ok := constString(e.info, x.Args[0]); ok {
				e.addRef(x.Args[0].Pos(), msg)
			}
		}

		return // This was a type conversion, handled or not.
	}

	// Case 2: A function call with catalog.Key parameters. This handles
	// implicit conversions for any function taking a catalog.Key, which
	// covers catalog.Text and methods alike.
	// We use TypeOf because it works for qualified (pkg.Func) and unqualified (Func) calls.
	sig, ok := e.info.TypeOf(x.Fun).(*types.Signature)
	if !ok {
		return
	}

	params := sig.Params()

	n := params.Len()
	if n == 0 {
		return
	}

	variadic := sig.Variadic()
	last := n - 1

	for i, arg := range x.Args {
		var pt types.Type

		if variadic && i >= last {
			// If called with ...slice, let composite literal handling discover elements.
			if x.Ellipsis != token.NoPos {
				continue
			}
			// A valid variadic signature guarantees the last param is a slice.
			pt = params.At(last).Type().(*types.Slice).Elem()
		} else {
			if i >= n {
				break // More arguments than parameters (and not variadic)
			}

			pt = params.At(i).Type()
		}

		if isKeyNamedType(pt, e.catalogPkgs) {
			if msg, ok := constString(e.info, arg); ok {
				e.addRef(arg.Pos(), msg)
			}
		}
	}
}

// addRef records a reference to a key, normalising the file path relative
// to the computed project root.
func (e *extractor) addRef(pos token.Pos, key string) {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.projectRoot, file); err == nil {
		file = rel
	}

	file = filepath.ToSlash(file)

	e.refs[key] = append(e.refs[key], ref{file: file, line: p.Line})
}

// findProjectRoot attempts to find a stable root directory for source references.
// Preference order:
//  1. git toplevel directory
//  2. nearest parent directory that contains go.mod
//  3. the provided working directory
func findProjectRoot(wd string) string {
	// Try git toplevel
	if root := gitTopLevel(wd); root != "" {
		return root
	}
	// Fall back to nearest go.mod
	if root := nearestGoModDir(wd); root != "" {
		return root
	}

	return wd
}

func gitTopLevel(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	cmd.Dir = wd

	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return ""
	}

	return filepath.Clean(root)
}

func nearestGoModDir(start string) string {
	dir := filepath.Clean(start)
	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return ""
}

func fileExists(path string) bool {
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return true
	}

	return false
}
