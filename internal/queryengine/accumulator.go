package queryengine

import "github.com/flier/kdtree/constraints"

// Entry pairs a distance with the content id it was measured for.
type Entry[A constraints.Axis, C constraints.Content] struct {
	Dist A
	ID   C
}

// Accumulator is what a query specialisation contributes to the shared
// descent: a way to consider one leaf candidate, and a current pruning
// radius below which a subtree cannot possibly improve the result.
type Accumulator[A constraints.Axis, C constraints.Content] interface {
	// PruneRadius returns the current radius beyond which a subtree can be
	// skipped entirely.
	PruneRadius() A

	// Offer considers one (distance, id) candidate produced by a leaf scan.
	Offer(dist A, id C)
}
