// Copyright 2025 - 2026, the loctool contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package localetree models the recursive key -> value structure stored in a
language's translation file and implements the transforms the pipeline runs
over it.

# Tree shape

A tree node is one of four kinds. A Branch is an ordered mapping from keys to
child nodes. A Text leaf is the legacy plain-string form of a translatable
value. A Message leaf is the current annotated form, an object with exactly
the two members "text" (a string) and "humanVerified" (a boolean). Every
other JSON value, arrays, numbers, booleans and null, is an Opaque leaf that
all transforms pass through byte for byte.

Key order is irrelevant for correctness but preserved through decode and
encode, so rewriting a file produces a diff that only shows real changes.
The decoder walks the document with json.Decoder tokens to keep the order
the file had; plain map decoding would lose it.

One shape cannot be represented: a genuine branch whose only members are a
string "text" and a boolean "humanVerified" always decodes as a Message
leaf. The migration in Upgrade relies on this to recognise already-migrated
leaves, which is what makes it safe to run twice.

# Transforms

Sync deep-merges a baseline tree into a target tree, filling only the key
paths the target lacks; an existing value is never overwritten. MissingKeys
reports the baseline key paths a target lacks, and only that direction.
Upgrade migrates Text leaves to Message leaves, consulting a verified key
set. All three address leaves by KeyPath, the dotted concatenation of branch
keys from the root.
*/
package localetree
