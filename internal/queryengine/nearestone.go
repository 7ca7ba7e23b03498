package queryengine

import "github.com/flier/kdtree/constraints"

// NearestOne accumulates the single closest candidate seen. Create one
// with NewNearestOne, which starts it at the sentinel (+largest_finite,
// zero id); an empty tree leaves it there rather than returning an error.
// The zero value starts at distance 0 and accepts no candidate.
type NearestOne[A constraints.Axis, C constraints.Content] struct {
	best  A
	id    C
	found bool
}

// NewNearestOne returns a NearestOne accumulator.
func NewNearestOne[A constraints.Axis, C constraints.Content]() *NearestOne[A, C] {
	return &NearestOne[A, C]{best: constraints.MaxFinite[A]()}
}

func (n *NearestOne[A, C]) PruneRadius() A { return n.best }

func (n *NearestOne[A, C]) Offer(dist A, id C) {
	if dist < n.best {
		n.best = dist
		n.id = id
		n.found = true
	}
}

// Result returns the closest candidate seen, or the sentinel distance if
// none was offered (the tree was empty).
func (n *NearestOne[A, C]) Result() (dist A, id C, found bool) {
	return n.best, n.id, n.found
}
