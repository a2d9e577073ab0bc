// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package dtree

import "github.com/rs/zerolog"

// Option configures a Tree at construction time.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger overrides the logger used for corruption diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Tree is a discrimination tree mapping flat keys to payloads of type T.
// The zero value is not usable; construct with New.
type Tree[T any] struct {
	root   *node[T]
	logger zerolog.Logger
}

// New returns an empty discrimination tree.
func New[T any](opts ...Option) *Tree[T] {
	c := config{logger: Logger}
	for _, opt := range opts {
		opt(&c)
	}
	return &Tree[T]{root: newBranch[T](), logger: c.logger}
}

// GetOrInsertWith walks key from the root, creating intermediate branches
// and the terminal leaf as needed, and returns a stable pointer to the
// payload stored there. makeDefault is called at most once, only when the
// leaf did not already exist.
//
// An ill-formed key (one whose running arity counter, per §3, does not
// reach exactly zero at the last item, or that disagrees with a
// previously-inserted key about whether a position is a branch or a leaf)
// is a corruption and halts the process.
func (t *Tree[T]) GetOrInsertWith(key Key, makeDefault func() T) *T {
	current := t.root
	remaining := 1
	var leafWasNew bool

	for _, item := range key {
		if remaining == 0 {
			corrupt(t.logger, "key continues past the point where its arity counter reached zero")
		}
		remaining--
		if !item.IsVar {
			remaining += item.Symbol.Arity()
		}

		if current.kind != branchKind {
			corrupt(t.logger, "expected a branch while walking an unterminated key, found a leaf")
		}

		makeChild := func() *node[T] {
			if remaining == 0 {
				return newLeaf[T]()
			}
			return newBranch[T]()
		}

		var next *node[T]
		var wasNew bool
		if item.IsVar {
			if current.varChild == nil {
				current.varChild = makeChild()
				wasNew = true
			}
			next = current.varChild
		} else {
			child, inserted := current.children.GetOrInsertWith(item.Symbol, makeChild)
			next = *child
			wasNew = inserted
		}

		wantKind := branchKind
		if remaining == 0 {
			wantKind = leafKind
		}
		if next.kind != wantKind {
			if wantKind == leafKind {
				corrupt(t.logger, "position should terminate the key but an intermediate branch is already stored there")
			}
			corrupt(t.logger, "position should continue the key but a leaf is already stored there")
		}

		current = next
		leafWasNew = wasNew
	}

	if remaining != 0 {
		corrupt(t.logger, "key ended before its arity counter reached zero")
	}
	if leafWasNew {
		current.payload = makeDefault()
	}
	return &current.payload
}
