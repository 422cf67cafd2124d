// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

package localetree

// Sync returns target deep-merged with baseline: every key path the target
// lacks is filled from the baseline, and every value the target already has
// is kept exactly as it is, whatever its shape. Neither input is modified.
//
// A key that is a branch in one tree and a leaf in the other is a shape
// conflict. The target value wins, because human-curated data must never be
// lost to a structural change in the baseline, and the conflict is logged
// with its KeyPath so an operator can repair it. A conflict in one subtree
// does not stop gap-filling anywhere else.
func Sync(target, baseline *Branch) *Branch {
	result := target.Clone()

	syncBranch(result, baseline, "")

	return result
}

func syncBranch(result, baseline *Branch, prefix string) {
	for _, key := range baseline.Keys() {
		base, _ := baseline.Get(key)
		path := joinPath(prefix, key)

		existing, ok := result.Get(key)

		if base.Kind == KindBranch {
			if !ok {
				existing = &Node{Kind: KindBranch, Branch: NewBranch()}

				result.Set(key, existing)
			}

			if existing.Kind != KindBranch {
				logShapeConflict(path, existing.Kind, base.Kind)

				continue
			}

			syncBranch(existing.Branch, base.Branch, path)

			continue
		}

		if !ok {
			result.Set(key, base.Clone())

			continue
		}

		if existing.Kind == KindBranch {
			logShapeConflict(path, existing.Kind, base.Kind)
		}
	}
}

func logShapeConflict(path string, target, baseline Kind) {
	Logger.Warn().
		Str("path", path).
		Str("target", target.String()).
		Str("baseline", baseline.String()).
		Msg("Shape conflict, keeping target value")
}
