// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

// Package discriminationtree collects two independent term indices for a
// ranked first-order alphabet: package dtree (a trie over the preorder
// flattening of a term) and package jli (a DAG of branch nodes linked by
// (symbol, arity) edges with jump lists for skip-past-a-subterm
// traversal). Neither index performs unification — both narrow candidates
// by shape and leave confirming unifiability to the caller.
//
// This package itself exports nothing; it exists to hold the module-level
// overview comment. Import dtree or jli directly.
package discriminationtree
