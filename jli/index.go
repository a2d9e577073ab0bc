// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package jli

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/MichaelRawson/discrimination-tree/internal/arena"
)

// connectionKey identifies the edge leaving a branch node for a given
// symbol at a given arity: (node, symbol, arity) -> child. Arity is part
// of the key, not just a property of symbol, so that two terms sharing a
// head symbol but built with different argument counts never collide —
// mirrors original_source/src/lib.rs's (NodeId, SymbolId, usize) key.
type connectionKey struct {
	node   arena.Handle
	symbol symbolID
	arity  int
}

// Option configures an Index.
type Option func(*config)

type config struct {
	logger       zerolog.Logger
	capacityHint int
}

// WithLogger overrides the package default Logger for one Index.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithCapacityHint pre-sizes the node store for n nodes, avoiding
// reallocation during the first n Insert-driven allocations. A hint only:
// the store still grows past n if needed.
func WithCapacityHint(n int) Option {
	return func(c *config) { c.capacityHint = n }
}

// Index is a jump-list index: a DAG of branch nodes connected by
// symbol/arity-keyed edges and a single variable edge, with jump lists at
// each branch recording, per stored subterm skipped past there, where the
// walk resumes. See Term, Insert, and PossibleUnifiers.
type Index[Symbol comparable, T any] struct {
	symbols     *symbolTable[Symbol]
	nodes       *arena.Store[Node[T]]
	kinds       *bitset.BitSet
	connections map[connectionKey]arena.Handle
	root        arena.Handle
	logger      zerolog.Logger
}

// New creates an empty Index.
func New[Symbol comparable, T any](opts ...Option) *Index[Symbol, T] {
	cfg := config{logger: Logger}
	for _, opt := range opts {
		opt(&cfg)
	}

	var nodes *arena.Store[Node[T]]
	if cfg.capacityHint > 0 {
		nodes = arena.NewWithCapacityHint[Node[T]](cfg.capacityHint)
	} else {
		nodes = arena.New[Node[T]]()
	}
	root, err := nodes.Alloc(Node[T]{})
	if err != nil {
		corrupt(cfg.logger, "failed to allocate the root node of a fresh index")
	}

	idx := &Index[Symbol, T]{
		symbols:     newSymbolTable[Symbol](),
		nodes:       nodes,
		kinds:       bitset.New(0),
		connections: make(map[connectionKey]arena.Handle),
		root:        root,
		logger:      cfg.logger,
	}
	idx.markBranch(root)
	return idx
}

func (idx *Index[Symbol, T]) isBranch(h arena.Handle) bool {
	return idx.kinds.Test(uint(h))
}

func (idx *Index[Symbol, T]) markBranch(h arena.Handle) {
	idx.kinds.Set(uint(h))
}

// jumpFrame tracks a branch's countdown to the end of one subterm it has
// started descending into: once the countdown reaches zero, the handle
// the walk has reached gets appended to that branch's jump list.
type jumpFrame struct {
	from  arena.Handle
	depth int
}

func settleJumpFrom(jumpFrom []jumpFrame) []jumpFrame {
	for len(jumpFrom) > 0 {
		top := &jumpFrom[len(jumpFrom)-1]
		if top.depth != 0 {
			top.depth--
			break
		}
		jumpFrom = jumpFrom[:len(jumpFrom)-1]
	}
	return jumpFrom
}

// Insert adds term as a stored term whose leaf carries payload, extending
// the index's DAG with whatever new branches and connections are needed
// and appending to existing jump lists along the way. Insert never removes
// or rewrites existing structure — the index only ever grows.
func (idx *Index[Symbol, T]) Insert(term *Term[Symbol], payload T) {
	current := idx.root
	todo := []*Term[Symbol]{term}
	var jumpFrom []jumpFrame

walk:
	for len(todo) > 0 {
		top := todo[len(todo)-1]

		if !idx.isBranch(current) {
			corrupt(idx.logger, "walked onto a leaf while structure for the term still existed")
		}
		n := idx.nodes.Get(current)

		if top.IsVariable() {
			if !n.hasVar {
				break walk
			}
			todo = todo[:len(todo)-1]
			jumpFrom = append(jumpFrom, jumpFrame{current, 0})
			current = n.varChild
		} else {
			arity := len(top.Args())
			id, ok := idx.symbols.lookup(top.Symbol())
			if !ok {
				break walk
			}
			next, ok := idx.connections[connectionKey{current, id, arity}]
			if !ok {
				break walk
			}
			todo = todo[:len(todo)-1]
			todo = append(todo, reversedArgs(top.Args())...)
			jumpFrom = append(jumpFrom, jumpFrame{current, arity})
			current = next
		}

		jumpFrom = settleJumpFrom(jumpFrom)
	}

	for len(todo) > 0 {
		top := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		if !idx.isBranch(current) {
			corrupt(idx.logger, "tried to extend a leaf with more structure")
		}
		n := idx.nodes.Get(current)

		next, err := idx.nodes.NextHandle()
		if err != nil {
			corrupt(idx.logger, errors.Wrap(err, "jli: insert").Error())
		}

		if top.IsVariable() {
			n.hasVar = true
			n.varChild = next
			// A stored variable is a whole subterm of its own, so the
			// variable child belongs in this branch's jump list too.
			jumpFrom = append(jumpFrom, jumpFrame{current, 0})
		} else {
			arity := len(top.Args())
			id, err := idx.symbols.intern(top.Symbol(), arity)
			if err != nil {
				corrupt(idx.logger, err.Error())
			}
			idx.connections[connectionKey{current, id, arity}] = next
			todo = append(todo, reversedArgs(top.Args())...)
			jumpFrom = append(jumpFrom, jumpFrame{current, arity})
		}

		allocated, err := idx.nodes.Alloc(Node[T]{})
		if err != nil {
			corrupt(idx.logger, errors.Wrap(err, "jli: insert").Error())
		}
		if allocated != next {
			corrupt(idx.logger, "node store allocated a different handle than NextHandle predicted")
		}
		if len(todo) > 0 {
			idx.markBranch(next)
		}
		current = next

		for len(jumpFrom) > 0 {
			top := jumpFrom[len(jumpFrom)-1]
			if top.depth != 0 {
				jumpFrom[len(jumpFrom)-1].depth--
				break
			}
			jumpFrom = jumpFrom[:len(jumpFrom)-1]
			branch := idx.nodes.Get(top.from)
			branch.jumpList = append(branch.jumpList, current)
		}
	}

	leaf := idx.nodes.Get(current)
	leaf.payloads = append(leaf.payloads, payload)
}
