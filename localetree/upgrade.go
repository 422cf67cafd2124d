// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

// Upgrade returns root with every Text leaf migrated to a Message leaf. The
// input is not modified.
//
// A leaf at key k with path p gets humanVerified set when verified contains
// either k or p: the translation sheet that sources the set is keyed by bare
// name, while the tree is keyed by path, so both spellings count. Message
// leaves pass through unchanged, which makes the migration safe to run
// twice; opaque leaves pass through like everywhere else.
func Upgrade(root *Branch, verified map[string]bool) *Branch {
	out := NewBranch()

	upgradeBranch(out, root, "", verified)

	return out
}

func upgradeBranch(out, in *Branch, prefix string, verified map[string]bool) {
	for _, key := range in.Keys() {
		node, _ := in.Get(key)
		path := joinPath(prefix, key)

		switch node.Kind {
		case KindBranch:
			child := NewBranch()

			upgradeBranch(child, node.Branch, path, verified)

			out.Set(key, &Node{Kind: KindBranch, Branch: child})
		case KindText:
			out.Set(key, &Node{Kind: KindMessage, Message: Message{
				Text:          node.Text,
				HumanVerified: verified[key] || verified[path],
			}})
		default:
			out.Set(key, node.Clone())
		}
	}
}
