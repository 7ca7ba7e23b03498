package kdtree

import (
	"iter"

	"github.com/flier/kdtree/pkg/tuple"
)

// Items returns a Go 1.23 range-over-func sequence of every (point, id)
// pair the tree holds, in internal permutation order rather than the
// order points were passed to Build. It wraps the same callback-based
// walk Visit uses behind an iter.Seq2.
func (t *Tree[A, C, M]) Items() iter.Seq2[Point[A], C] {
	return func(yield func(Point[A], C) bool) {
		t.Visit(func(p Point[A], id C) bool {
			return yield(p, id)
		})
	}
}

// Visit calls cb for every (point, id) pair the tree holds, in internal
// permutation order, stopping early if cb returns false. It reports
// whether it visited every item (i.e. cb never returned false). Kept
// alongside Items for callers that predate Go 1.23 range-over-func.
func (t *Tree[A, C, M]) Visit(cb func(Point[A], C) bool) bool {
	n := t.store.Len()
	for i := 0; i < n; i++ {
		p, id := t.store.At(i)
		if !cb(Point[A](p), id) {
			return false
		}
	}
	return true
}

// ItemTuples is a convenience wrapper over Items that yields
// pkg/tuple.Tuple2 pairs instead of two separate values, for callers that
// want to pass (point, id) around as a single value.
func (t *Tree[A, C, M]) ItemTuples() iter.Seq[tuple.Tuple2[Point[A], C]] {
	return func(yield func(tuple.Tuple2[Point[A], C]) bool) {
		t.Visit(func(p Point[A], id C) bool {
			return yield(tuple.New2(p, id))
		})
	}
}
