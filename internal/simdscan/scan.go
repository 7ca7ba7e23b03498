package simdscan

import (
	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/metric"
)

// TileWidth is the number of lanes processed per accumulation step
// (default 8). It is a constant, never derived per query, so accumulator
// storage can live on the stack or in a pooled buffer of fixed size.
const TileWidth = 8

// AccumulateTile folds one axis column's contribution into acc for a tile
// of up to TileWidth points: acc[i] = m.Combine(acc[i], m.AxisDist(col[i]
// - queryAxis)) for i in range acc.
//
// Callers are expected to call this once per axis, in round-robin over
// the bucket's K columns, then read off acc for the finished points.
func AccumulateTile[A constraints.Axis](m metric.Metric[A], queryAxis A, col []A, acc []A) {
	n := len(acc)
	if len(col) < n {
		n = len(col)
	}
	for i := 0; i < n; i++ {
		delta := col[i] - queryAxis
		acc[i] = m.Combine(acc[i], m.AxisDist(delta))
	}
}

// ScanBucket computes the metric distance from query to every point in a
// bucket's per-axis columns, tiling the work tileWidth points at a time
// and processing the len mod tileWidth remainder individually. tileWidth
// <= 0 selects TileWidth, the package default; a positive value overrides
// it per the tree's configured SIMD tile width.
//
// dst must have the same length as the bucket (cols[*] all share that
// length); it receives the finished per-point distances and doubles as
// the tile accumulator, so no per-call scratch is allocated beyond what
// the caller already owns.
func ScanBucket[A constraints.Axis](m metric.Metric[A], query []A, cols [][]A, dst []A, tileWidth int) {
	if tileWidth <= 0 {
		tileWidth = TileWidth
	}

	n := len(dst)
	for base := 0; base < n; base += tileWidth {
		width := tileWidth
		if base+width > n {
			width = n - base
		}

		acc := dst[base : base+width]
		for i := range acc {
			acc[i] = constraints.Zero[A]()
		}

		for axis, col := range cols {
			AccumulateTile(m, query[axis], col[base:base+width], acc)
		}
	}
}
