// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

// Package jli implements a jump-list index: a DAG of branch nodes
// connected by symbol/arity-keyed edges and a single variable edge, with
// a jump list at each branch recording where the walk resumes after
// skipping past one full stored subterm.
//
// Unlike dtree, jli answers "what might this query term unify with" —
// PossibleUnifiers returns candidates that could be either a
// generalisation or an instantiation of the query, since unification can
// bind variables on either side. It still performs no unification itself;
// callers confirm unifiability of whatever candidates come back.
//
// Like dtree, an Index only ever grows (Insert never rewrites existing
// structure) and is single-threaded: a PossibleUnifiers result borrows
// the Index for its lifetime.
package jli
