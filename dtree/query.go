// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package dtree

import (
	"iter"

	"github.com/rs/zerolog"
)

// subtermEnd returns the index just past the subterm rooted at key[i],
// using the same running-counter rule as §3's well-formedness check,
// restarted fresh at position i.
func subtermEnd(logger zerolog.Logger, key Key, i int) int {
	remaining := 1
	for remaining > 0 {
		if i >= len(key) {
			corrupt(logger, "key ended mid-subterm during traversal")
		}
		if !key[i].IsVar {
			remaining += key[i].Symbol.Arity()
		}
		remaining--
		i++
	}
	return i
}

type todoFrame[T any] struct {
	node *node[T]
	idx  int
}

type skipFrame[T any] struct {
	node      *node[T]
	idx       int
	remaining int
}

// QueryIter is the external iterator over a Tree's Query results. It is
// pure state (three stacks, §4.1) — dropping it mid-sequence is safe and
// touches nothing outside the iterator itself.
type QueryIter[T any] struct {
	tree                    *Tree[T]
	key                     Key
	generalise, instantiate bool

	found []*T
	todo  []todoFrame[T]
	skip  []skipFrame[T]
}

// Query returns a lazy, LIFO-ordered sequence of payload pointers for
// every stored term matching key under the requested relaxations. See
// spec §4.1 for the exact semantics of generalise and instantiate.
func (t *Tree[T]) Query(key Key, generalise, instantiate bool) *QueryIter[T] {
	return &QueryIter[T]{
		tree:        t,
		key:         key,
		generalise:  generalise,
		instantiate: instantiate,
		todo:        []todoFrame[T]{{node: t.root, idx: 0}},
	}
}

// Next returns the next matching payload, or ok=false once the sequence is
// exhausted.
func (q *QueryIter[T]) Next() (payload *T, ok bool) {
	for len(q.found) == 0 {
		if len(q.todo) == 0 && len(q.skip) == 0 {
			return nil, false
		}
		q.step()
	}
	n := len(q.found)
	payload = q.found[n-1]
	q.found = q.found[:n-1]
	return payload, true
}

// Seq adapts Next into a Go 1.23 range-over-func iterator.
func (q *QueryIter[T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			v, ok := q.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// step performs exactly one expansion: todo takes priority over skip, per
// §4.1's traversal engine.
func (q *QueryIter[T]) step() {
	if n := len(q.todo); n > 0 {
		frame := q.todo[n-1]
		q.todo = q.todo[:n-1]
		q.expandTodo(frame)
		return
	}

	n := len(q.skip)
	frame := q.skip[n-1]
	q.skip = q.skip[:n-1]
	q.expandSkip(frame)
}

// pushSkipTarget records that node must be reached after consuming exactly
// remaining more flat-key items of stored structure. A remaining of zero
// means the normal walk resumes at idx immediately (pushed onto todo
// rather than skip).
func (q *QueryIter[T]) pushSkipTarget(node *node[T], idx, remaining int) {
	if remaining == 0 {
		q.todo = append(q.todo, todoFrame[T]{node: node, idx: idx})
		return
	}
	q.skip = append(q.skip, skipFrame[T]{node: node, idx: idx, remaining: remaining})
}

func (q *QueryIter[T]) expandTodo(frame todoFrame[T]) {
	logger := q.tree.logger
	n, idx := frame.node, frame.idx

	if idx == len(q.key) {
		if n.kind != leafKind {
			corrupt(logger, "query reached end-of-key at a branch, expected a leaf")
		}
		q.found = append(q.found, &n.payload)
		return
	}
	if n.kind != branchKind {
		corrupt(logger, "query expected a branch mid-key, found a leaf")
	}

	item := q.key[idx]
	if item.IsVar {
		// Exact: a query variable always descends the stored variable child.
		if n.varChild != nil {
			q.todo = append(q.todo, todoFrame[T]{node: n.varChild, idx: idx + 1})
		}
		if q.instantiate {
			// Every stored symbol child could instantiate this query variable;
			// skip over its whole subterm before resuming the normal walk.
			for _, e := range n.children.Entries() {
				q.pushSkipTarget(e.Val, idx+1, e.Key.Arity())
			}
		}
		return
	}

	// Exact: descend the matching symbol child, if any.
	if child, ok := n.children.Get(item.Symbol); ok {
		q.todo = append(q.todo, todoFrame[T]{node: child, idx: idx + 1})
	}
	if q.generalise && n.varChild != nil {
		// A stored variable generalises this query symbol: skip the whole
		// query subterm rooted here and resume after it.
		end := subtermEnd(logger, q.key, idx)
		q.todo = append(q.todo, todoFrame[T]{node: n.varChild, idx: end})
	}
}

func (q *QueryIter[T]) expandSkip(frame skipFrame[T]) {
	logger := q.tree.logger
	n, idx, remaining := frame.node, frame.idx, frame.remaining

	if n.kind != branchKind {
		corrupt(logger, "instantiation skip expected a branch, found a leaf before its countdown reached zero")
	}

	for _, e := range n.children.Entries() {
		q.pushSkipTarget(e.Val, idx, remaining-1+e.Key.Arity())
	}
	if n.varChild != nil {
		q.pushSkipTarget(n.varChild, idx, remaining-1)
	}
}
