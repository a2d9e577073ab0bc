// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package dtree

import (
	"fmt"
	"strings"
)

// String renders a depth-first shape of the tree (branch/leaf structure
// only, no payloads) for debugging. It is not a stable or parseable
// format — spec treats debug formatting as out of scope for the core
// contract, so this exists purely as a development aid.
func (t *Tree[T]) String() string {
	var b strings.Builder
	writeNode(&b, t.root, 0)
	return b.String()
}

func writeNode[T any](b *strings.Builder, n *node[T], depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.kind {
	case leafKind:
		fmt.Fprintf(b, "%sleaf\n", indent)
	case branchKind:
		fmt.Fprintf(b, "%sbranch\n", indent)
		for _, e := range n.children.Entries() {
			fmt.Fprintf(b, "%s  [%v]:\n", indent, e.Key)
			writeNode(b, e.Val, depth+2)
		}
		if n.varChild != nil {
			fmt.Fprintf(b, "%s  [*]:\n", indent)
			writeNode(b, n.varChild, depth+2)
		}
	}
}
