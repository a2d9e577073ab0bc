package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocReturnsStableHandles(t *testing.T) {
	s := New[string]()

	h0, err := s.Alloc("zero")
	require.NoError(t, err)
	h1, err := s.Alloc("one")
	require.NoError(t, err)

	require.Equal(t, Handle(0), h0)
	require.Equal(t, Handle(1), h1)
	require.Equal(t, "zero", *s.Get(h0))
	require.Equal(t, "one", *s.Get(h1))
	require.Equal(t, 2, s.Len())
}

// TestHandleSurvivesGrowth checks the guarantee Store actually makes: a
// Handle keeps addressing the same logical element no matter how much the
// store grows afterwards. It deliberately does NOT hold a *T returned by
// Get across a later Alloc — that pointer is only valid until the next
// Alloc, since append can reallocate the backing array (see Get's doc
// comment); re-Get after growth is the documented way to mutate again.
func TestHandleSurvivesGrowth(t *testing.T) {
	s := New[int]()
	h, err := s.Alloc(1)
	require.NoError(t, err)

	*s.Get(h) = 42

	// grow the store well past any initial backing array capacity
	for i := 0; i < 1000; i++ {
		_, err := s.Alloc(i)
		require.NoError(t, err)
	}

	require.Equal(t, 42, *s.Get(h))
}

func TestNextHandlePredictsAlloc(t *testing.T) {
	s := New[int]()
	next, err := s.NextHandle()
	require.NoError(t, err)

	h, err := s.Alloc(7)
	require.NoError(t, err)
	require.Equal(t, next, h)
}

func TestGetOutOfRangePanics(t *testing.T) {
	s := New[int]()
	require.Panics(t, func() {
		s.Get(0)
	})
}

func TestNewWithCapacityHintStartsEmpty(t *testing.T) {
	s := NewWithCapacityHint[int](16)
	require.Equal(t, 0, s.Len())
	require.GreaterOrEqual(t, s.Cap(), 16)

	h, err := s.Alloc(1)
	require.NoError(t, err)
	require.Equal(t, Handle(0), h)
}
