// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package dtree

import "github.com/MichaelRawson/discrimination-tree/internal/ordmap"

// Symbol satisfies ordmap.Comparable[Symbol] directly: its own Compare
// method has exactly the shape ordmap needs.
var _ ordmap.Comparable[Symbol] = Symbol(nil)

type nodeKind uint8

const (
	branchKind nodeKind = iota
	leafKind
)

// node is a tagged union: a branch (symbol-keyed children plus an optional
// variable child) or a leaf (a payload slot). Its kind is fixed the moment
// it is allocated and never changes — §3's "structural type of a node is
// fixed at allocation".
type node[T any] struct {
	kind nodeKind

	// branch fields
	children ordmap.Map[Symbol, *node[T]]
	varChild *node[T]

	// leaf field
	payload T
}

func newBranch[T any]() *node[T] {
	return &node[T]{kind: branchKind}
}

func newLeaf[T any]() *node[T] {
	return &node[T]{kind: leafKind}
}
