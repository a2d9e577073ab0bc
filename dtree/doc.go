// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

// Package dtree implements a discrimination tree: a trie keyed by the
// preorder flattening of a first-order term, supporting exact,
// generalisation, and instantiation retrieval.
//
// A discrimination tree is monotone — GetOrInsertWith only ever grows the
// tree — and single-threaded: a Query's QueryIter borrows the Tree for its
// lifetime and concurrent insertion during iteration is not supported.
//
// The tree does not perform unification. Query only narrows candidates by
// the shape their flat keys must have to be unifiable, generalising, or
// instantiating; callers confirm unifiability themselves.
package dtree
