package stemidx

import (
	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/internal/memalign"
)

// Eytzinger is the default stem layout: logical index equals physical
// slot. Root is at slot 1; slot 0 is unused.
type Eytzinger[A constraints.Axis] struct {
	s      []A
	leaves int
	depth  int
}

var _ Layout[float64] = (*Eytzinger[float64])(nil)

// NewEytzinger allocates a stem array for a tree with the given number of
// leaves (must be a power of two, or 1), aligned to alignBytes.
func NewEytzinger[A constraints.Axis](leaves, alignBytes int) *Eytzinger[A] {
	e := &Eytzinger[A]{leaves: leaves, depth: Depth(leaves)}
	if leaves > 1 {
		e.s = memalign.Slice[A](leaves, alignBytes)
	}
	sentinel := constraints.MaxFinite[A]()
	for i := range e.s {
		e.s[i] = sentinel
	}
	return e
}

func (e *Eytzinger[A]) Get(logicalIndex int) A { return e.s[logicalIndex] }
func (e *Eytzinger[A]) Set(logicalIndex int, v A) { e.s[logicalIndex] = v }
func (e *Eytzinger[A]) Leaves() int            { return e.leaves }
func (e *Eytzinger[A]) Depth() int             { return e.depth }
