// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package jli

import (
	"fmt"
	"strings"

	"github.com/MichaelRawson/discrimination-tree/internal/arena"
)

// String renders a debug dump of the index's DAG: one line per reachable
// node showing its handle, its jump list, and its variable edge, if any
// (symbol edges are followed but not printed). Not a
// stable or parseable format — a development aid only.
func (idx *Index[Symbol, T]) String() string {
	var b strings.Builder
	seen := make(map[arena.Handle]bool)
	idx.writeNode(&b, idx.root, seen)
	return b.String()
}

func (idx *Index[Symbol, T]) writeNode(b *strings.Builder, h arena.Handle, seen map[arena.Handle]bool) {
	if seen[h] {
		return
	}
	seen[h] = true

	if !idx.isBranch(h) {
		leaf := idx.nodes.Get(h)
		fmt.Fprintf(b, "%d: leaf payloads=%d\n", h, len(leaf.payloads))
		return
	}

	branch := idx.nodes.Get(h)
	fmt.Fprintf(b, "%d: branch jumpList=%v", h, branch.jumpList)
	if branch.hasVar {
		fmt.Fprintf(b, " var->%d", branch.varChild)
	}
	fmt.Fprintln(b)

	children := make([]arena.Handle, 0)
	for key, child := range idx.connections {
		if key.node == h {
			children = append(children, child)
		}
	}
	for _, c := range children {
		idx.writeNode(b, c, seen)
	}
	if branch.hasVar {
		idx.writeNode(b, branch.varChild, seen)
	}
}
