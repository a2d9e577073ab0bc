// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package jli

import (
	"iter"

	"github.com/MichaelRawson/discrimination-tree/internal/arena"
)

// choicePoint is one alternative left to explore: resume at node with
// parts still to match, where parts is kept in the same "top of stack is
// leftmost remaining subterm" order Insert uses for todo.
type choicePoint[Symbol any] struct {
	node  arena.Handle
	parts []*Term[Symbol]
}

func cloneParts[Symbol any](parts []*Term[Symbol]) []*Term[Symbol] {
	return append([]*Term[Symbol](nil), parts...)
}

// UnifierIter is the external iterator over an Index's PossibleUnifiers
// results. Like dtree's QueryIter, it is pure state — a stack of choice
// points plus a cursor over the payload slice of whatever leaf was last
// reached.
type UnifierIter[Symbol comparable, T any] struct {
	idx *Index[Symbol, T]

	todo   []choicePoint[Symbol]
	cursor []T
	cpos   int
}

// PossibleUnifiers returns every stored term's payloads that query might
// unify with: both generalisations and instantiations of query, since
// unification can bind either side's variables. See spec §4.2.
func (idx *Index[Symbol, T]) PossibleUnifiers(query *Term[Symbol]) *UnifierIter[Symbol, T] {
	return &UnifierIter[Symbol, T]{
		idx:  idx,
		todo: []choicePoint[Symbol]{{node: idx.root, parts: []*Term[Symbol]{query}}},
	}
}

// Next returns the next candidate payload, or ok=false once exhausted.
func (u *UnifierIter[Symbol, T]) Next() (*T, bool) {
	for {
		if u.cpos < len(u.cursor) {
			v := &u.cursor[u.cpos]
			u.cpos++
			return v, true
		}
		if len(u.todo) == 0 {
			return nil, false
		}
		u.step()
	}
}

// Seq adapts Next into a Go 1.23 range-over-func iterator.
func (u *UnifierIter[Symbol, T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			v, ok := u.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (u *UnifierIter[Symbol, T]) step() {
	n := len(u.todo)
	cp := u.todo[n-1]
	u.todo = u.todo[:n-1]

	if len(cp.parts) == 0 {
		if u.idx.isBranch(cp.node) {
			corrupt(u.idx.logger, "query reached end-of-term at a branch, expected a leaf")
		}
		leaf := u.idx.nodes.Get(cp.node)
		u.cursor = leaf.payloads
		u.cpos = 0
		return
	}

	if !u.idx.isBranch(cp.node) {
		corrupt(u.idx.logger, "query expected a branch mid-term, found a leaf")
	}
	branch := u.idx.nodes.Get(cp.node)

	top := cp.parts[len(cp.parts)-1]
	rest := cp.parts[:len(cp.parts)-1]

	if top.IsVariable() {
		// A query variable can unify with whatever is stored at any of this
		// branch's jump-list targets, each having skipped exactly one whole
		// stored subterm. Pushed in stored order, so the last-recorded jump
		// (the innermost/most-recent one discharged during Insert) is
		// expanded first.
		for _, h := range branch.jumpList {
			u.todo = append(u.todo, choicePoint[Symbol]{node: h, parts: cloneParts(rest)})
		}
		return
	}

	// Push the variable-child alternative first so it ends up underneath
	// the matching-symbol alternative on the stack: a query symbol is
	// explored before falling back to a stored variable at the same spot.
	if branch.hasVar {
		u.todo = append(u.todo, choicePoint[Symbol]{node: branch.varChild, parts: cloneParts(rest)})
	}

	if id, ok := u.idx.symbols.lookup(top.Symbol()); ok {
		key := connectionKey{cp.node, id, len(top.Args())}
		if next, ok := u.idx.connections[key]; ok {
			if u.idx.isBranch(next) {
				parts := append(cloneParts(rest), reversedArgs(top.Args())...)
				u.todo = append(u.todo, choicePoint[Symbol]{node: next, parts: parts})
			} else {
				leaf := u.idx.nodes.Get(next)
				u.cursor = leaf.payloads
				u.cpos = 0
			}
		}
	}
}
