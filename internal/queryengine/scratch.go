package queryengine

import (
	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/internal/xsync"
)

// Scratch holds the per-query working storage a descent needs: the
// running split-distance vector (off[0..K]) and a reusable leaf-scan
// distance buffer. Keeping both pooled means a query does not reallocate
// them; the accumulator and the per-leaf column views that
// leafstore.LeafSlice builds are still allocated per query.
type Scratch[A constraints.Axis] struct {
	Off  []A
	Leaf []A
}

// NewScratchPool returns a pool of per-query scratch buffers sized for
// trees of the given dimension, using internal/xsync.Pool for
// cross-query scratch reuse.
func NewScratchPool[A constraints.Axis](dims int) *xsync.Pool[Scratch[A]] {
	return &xsync.Pool[Scratch[A]]{
		New: func() *Scratch[A] {
			return &Scratch[A]{Off: make([]A, dims)}
		},
		Reset: func(s *Scratch[A]) {
			z := constraints.Zero[A]()
			for i := range s.Off {
				s.Off[i] = z
			}
		},
	}
}
