package kdtree

import "github.com/flier/kdtree/constraints"

// Point is a K-dimensional coordinate. Its length must equal the Tree's
// configured dimension for every call that takes one.
type Point[A constraints.Axis] []A

// Neighbour is one result of NearestOne, NearestN, Within or
// WithinUnsorted.
type Neighbour[A constraints.Axis, C constraints.Content] struct {
	Distance A
	Item     C
}

// BestNeighbour is one result of BestNWithin, ranked by a caller-supplied
// key rather than by distance.
type BestNeighbour[A constraints.Axis, C constraints.Content] struct {
	Item C
	Rank A
}

// StemOrdering selects the physical layout of the stem array.
type StemOrdering int

const (
	// Eytzinger is the default, classic implicit binary-heap stem layout.
	Eytzinger StemOrdering = iota

	// ModifiedVanEmdeBoas groups stems into cacheline-sized superblocks at
	// the cost of a small lookup indirection; its real-world benefit is
	// workload-dependent.
	ModifiedVanEmdeBoas
)

func (o StemOrdering) String() string {
	switch o {
	case ModifiedVanEmdeBoas:
		return "modified_van_emde_boas"
	default:
		return "eytzinger"
	}
}
