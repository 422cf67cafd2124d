// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

// Walk applies fn to every non-branch node under root together with its
// dotted KeyPath, descending branches in key order.
func Walk(root *Branch, fn func(path string, n *Node)) {
	walkBranch(root, "", fn)
}

func walkBranch(b *Branch, prefix string, fn func(path string, n *Node)) {
	for _, key := range b.Keys() {
		node, _ := b.Get(key)
		path := joinPath(prefix, key)

		if node.Kind == KindBranch {
			walkBranch(node.Branch, path, fn)

			continue
		}

		fn(path, node)
	}
}

// Flatten returns the KeyPath of every non-branch position under root, in
// document order. An empty branch contributes nothing.
func Flatten(root *Branch) []string {
	var paths []string

	Walk(root, func(path string, _ *Node) {
		paths = append(paths, path)
	})

	return paths
}

// MissingKeys returns the KeyPaths present in baseline but absent from
// target, in baseline document order.
//
// The comparison is directional: paths only the target has are never
// reported. A completeness check cares about gaps, not extras.
func MissingKeys(baseline, target *Branch) []string {
	have := make(map[string]bool)

	Walk(target, func(path string, _ *Node) {
		have[path] = true
	})

	var missing []string

	Walk(baseline, func(path string, _ *Node) {
		if !have[path] {
			missing = append(missing, path)
		}
	})

	return missing
}

// joinPath appends key to a dotted path prefix.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
