package simdscan

import "github.com/flier/kdtree/constraints"

// bestInTileScalar is the portable horizontal reduction used by all
// architectures.
func bestInTileScalar[A constraints.Axis](acc []A) (int, A) {
	bestIdx := 0
	best := constraints.MaxFinite[A]()

	for i, v := range acc {
		if v < best {
			best = v
			bestIdx = i
		}
	}

	return bestIdx, best
}
