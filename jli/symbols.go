// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

package jli

import "github.com/pkg/errors"

// symbolID is a dense, append-only alias for a Symbol value. Equal Symbol
// values always intern to the same id.
type symbolID uint32

// symbolTable interns Symbol values into dense ids and remembers the arity
// each symbol was first seen at (Supplemented Feature: Intern rejects a
// symbol reused at a different arity rather than silently producing a
// connection key that two different insertions disagree about).
//
// Unlike dtree's Symbol, jli's Symbol carries no Arity method: a symbol's
// arity here is purely "however many args the term that used it had", so
// the guard below is the only place arity is ever recorded for a symbol.
type symbolTable[Symbol comparable] struct {
	ids     map[Symbol]symbolID
	arities []int
}

func newSymbolTable[Symbol comparable]() *symbolTable[Symbol] {
	return &symbolTable[Symbol]{ids: make(map[Symbol]symbolID)}
}

func (st *symbolTable[Symbol]) lookup(s Symbol) (symbolID, bool) {
	id, ok := st.ids[s]
	return id, ok
}

// intern returns the id for s, recording arity on first use. A later call
// for the same s with a different arity reports an error instead of
// returning a stale id.
func (st *symbolTable[Symbol]) intern(s Symbol, arity int) (symbolID, error) {
	if id, ok := st.ids[s]; ok {
		if st.arities[id] != arity {
			return 0, errors.Errorf("jli: symbol %v used at arity %d, previously interned at arity %d", s, arity, st.arities[id])
		}
		return id, nil
	}
	id := symbolID(len(st.arities))
	st.ids[s] = id
	st.arities = append(st.arities, arity)
	return id, nil
}
