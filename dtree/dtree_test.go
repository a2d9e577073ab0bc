package dtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSymbol is the fixture symbol type used throughout these tests,
// grounded on original_source/src/tests.rs's S("name", arity).
type testSymbol struct {
	name  string
	arity int
}

func (s testSymbol) Compare(other Symbol) int {
	o := other.(testSymbol)
	switch {
	case s.name < o.name:
		return -1
	case s.name > o.name:
		return 1
	default:
		return 0
	}
}

func (s testSymbol) Arity() int { return s.arity }

var (
	symA = testSymbol{"a", 0}
	symB = testSymbol{"b", 0}
	symC = testSymbol{"c", 0}
	symF = testSymbol{"f", 2}
	symG = testSymbol{"g", 2}
)

// buildFixture reproduces spec.md §8's six stored terms:
//
//	1: f(g(a, X), c)
//	2: f(g(X, b), X)
//	3: f(g(a, b), a)
//	4: f(g(X, c), b)
//	5: f(X, X)
//	6: f(g(b, c), X)
func buildFixture(t *testing.T) *Tree[int] {
	t.Helper()
	tree := New[int]()
	zero := func() int { return 0 }

	*tree.GetOrInsertWith(Key{Sym(symF), Sym(symG), Sym(symA), Var, Sym(symC)}, zero) = 1
	*tree.GetOrInsertWith(Key{Sym(symF), Sym(symG), Var, Sym(symB), Var}, zero) = 2
	*tree.GetOrInsertWith(Key{Sym(symF), Sym(symG), Sym(symA), Sym(symB), Sym(symA)}, zero) = 3
	*tree.GetOrInsertWith(Key{Sym(symF), Sym(symG), Var, Sym(symC), Sym(symB)}, zero) = 4
	*tree.GetOrInsertWith(Key{Sym(symF), Var, Var}, zero) = 5
	*tree.GetOrInsertWith(Key{Sym(symF), Sym(symG), Sym(symB), Sym(symC), Var}, zero) = 6

	return tree
}

func drain(q *QueryIter[int]) []int {
	var out []int
	for {
		v, ok := q.Next()
		if !ok {
			return out
		}
		out = append(out, *v)
	}
}

func TestExact(t *testing.T) {
	tree := buildFixture(t)
	got := drain(tree.Query(Key{Sym(symF), Sym(symG), Sym(symA), Var, Sym(symC)}, false, false))
	require.Equal(t, []int{1}, got)
}

func TestGeneralisation(t *testing.T) {
	tree := buildFixture(t)
	got := drain(tree.Query(Key{Sym(symF), Sym(symG), Sym(symA), Sym(symC), Sym(symB)}, true, false))
	require.Equal(t, []int{5, 4}, got)
}

func TestInstantiation(t *testing.T) {
	tree := buildFixture(t)
	got := drain(tree.Query(Key{Sym(symF), Var, Var}, false, true))
	require.Equal(t, []int{5, 4, 2, 6, 1, 3}, got)
}

func TestGeneralisationAndInstantiation(t *testing.T) {
	tree := buildFixture(t)
	got := drain(tree.Query(Key{Sym(symF), Sym(symG), Var, Sym(symB), Var}, true, true))
	require.Equal(t, []int{5, 1, 3, 2}, got)
}

func TestSeqMatchesNext(t *testing.T) {
	tree := buildFixture(t)
	var got []int
	for v := range tree.Query(Key{Sym(symF), Var, Var}, false, true).Seq() {
		got = append(got, *v)
	}
	require.Equal(t, []int{5, 4, 2, 6, 1, 3}, got)
}

func TestInsertLookupRoundTrip(t *testing.T) {
	tree := New[string]()
	key := Key{Sym(symF), Sym(symA), Sym(symB)}

	*tree.GetOrInsertWith(key, func() string { return "" }) = "hello"

	got := drain2(tree.Query(key, false, false))
	require.Equal(t, []string{"hello"}, got)
}

func drain2(q *QueryIter[string]) []string {
	var out []string
	for {
		v, ok := q.Next()
		if !ok {
			return out
		}
		out = append(out, *v)
	}
}

func TestIdempotentInsertionDoesNotCallDefaultTwice(t *testing.T) {
	tree := New[int]()
	key := Key{Sym(symF), Sym(symA), Sym(symB)}

	calls := 0
	makeDefault := func() int {
		calls++
		return 7
	}

	p1 := tree.GetOrInsertWith(key, makeDefault)
	*p1 = 99
	p2 := tree.GetOrInsertWith(key, makeDefault)

	require.Equal(t, 1, calls)
	require.Equal(t, 99, *p2)
	require.Same(t, p1, p2)
}

func TestArityMismatchIsCorruption(t *testing.T) {
	tree := New[int]()
	zero := func() int { return 0 }

	// f/2 first
	*tree.GetOrInsertWith(Key{Sym(symF), Sym(symA), Sym(symB)}, zero) = 1

	// the same symbol value at a different arity is a programmer error
	badF := testSymbol{"f", 1}
	require.Panics(t, func() {
		tree.GetOrInsertWith(Key{Sym(badF), Sym(symA)}, zero)
	})
}

func TestIllFormedKeyTooShortIsCorruption(t *testing.T) {
	tree := New[int]()
	require.Panics(t, func() {
		tree.GetOrInsertWith(Key{Sym(symF), Sym(symA)}, func() int { return 0 })
	})
}

func TestIllFormedKeyTooLongIsCorruption(t *testing.T) {
	tree := New[int]()
	require.Panics(t, func() {
		tree.GetOrInsertWith(Key{Sym(symA), Sym(symB)}, func() int { return 0 })
	})
}

func TestStringDumpMentionsBranchAndLeaf(t *testing.T) {
	tree := buildFixture(t)
	s := tree.String()
	require.True(t, strings.Contains(s, "branch"))
	require.True(t, strings.Contains(s, "leaf"))
}
