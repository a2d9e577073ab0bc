// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package jli

import "github.com/MichaelRawson/discrimination-tree/internal/arena"

// Node is a jump-list index node. Unlike dtree's node, Node carries no kind
// tag of its own: whether a handle denotes a branch or a leaf is recorded
// once, externally, in Index.kinds (a bitset.BitSet) — see Index.isBranch.
// A freshly allocated Node is a valid, empty leaf; becoming a branch is the
// act of setting its bit and populating varChild/jumpList.
type Node[T any] struct {
	// branch fields
	hasVar   bool
	varChild arena.Handle
	jumpList []arena.Handle

	// leaf field
	payloads []T
}
