// Copyright (c) 2026 Michael Rawson
// SPDX-License-Identifier: MIT

// Package arena implements the handle-addressed, append-only node store
// shared by the jump-list index. It is deliberately free of any notion of
// "branch" or "leaf" — callers address opaque values of type T by a stable
// Handle that never moves or gets freed once allocated. A *T returned by
// Get is only valid until the next Alloc on the same Store: the backing
// slice can reallocate past its current capacity, same as any []T.
package arena

import (
	"math"

	"github.com/pkg/errors"
)

// Handle is a stable, dense address into a Store. Handles are never
// invalidated and never reused: the store only grows.
type Handle uint32

// ErrExhausted is wrapped and returned when a Store has allocated as many
// handles as a Handle can address.
var ErrExhausted = errors.New("arena: handle space exhausted")

// Store is an append-only collection of T, addressed by Handle. The zero
// value is an empty, usable store.
type Store[T any] struct {
	items []T
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// NewWithCapacityHint returns an empty Store whose backing slice is
// pre-sized for n elements, avoiding reallocation during the first n
// allocations. It is a hint only: the store still grows past n if needed.
func NewWithCapacityHint[T any](n int) *Store[T] {
	return &Store[T]{items: make([]T, 0, n)}
}

// NextHandle reports the Handle that the next call to Alloc will return,
// without allocating anything. The jump-list index's build phase relies on
// this to wire up edges before the node they point to exists (see jli's
// insert).
func (s *Store[T]) NextHandle() (Handle, error) {
	if len(s.items) >= math.MaxUint32 {
		return 0, errors.Wrapf(ErrExhausted, "store already holds %d nodes", len(s.items))
	}
	return Handle(len(s.items)), nil
}

// Alloc appends value to the store and returns its new Handle.
func (s *Store[T]) Alloc(value T) (Handle, error) {
	h, err := s.NextHandle()
	if err != nil {
		return 0, err
	}
	s.items = append(s.items, value)
	return h, nil
}

// Get returns a pointer to the value at h. h itself is stable forever, but
// the returned *T is only valid until the next call to Alloc on this
// Store: Alloc may grow the backing slice into a new array, same as any
// append past capacity would. Callers that need to mutate through a
// pointer across further allocations must re-Get it afterwards.
//
// Passing a Handle not returned by this Store (or by a NextHandle call
// immediately followed by the matching Alloc) is a programmer error and
// panics, per the corruption policy of the structures built on top of
// arena.
func (s *Store[T]) Get(h Handle) *T {
	if int(h) >= len(s.items) {
		panic("arena: handle out of range — either a stale handle from a different store, or memory corruption")
	}
	return &s.items[h]
}

// Len reports how many elements have been allocated.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Cap reports the current backing capacity, i.e. how many elements the
// store can hold in total before the next reallocation.
func (s *Store[T]) Cap() int {
	return cap(s.items)
}
