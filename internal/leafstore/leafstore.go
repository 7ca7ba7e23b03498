// Package leafstore implements the columnar leaf bucket store: a single
// packed array per axis plus a content column, partitioned into
// variable-size buckets via a per-bucket offset table.
//
// All K+1 columns share the same permutation of input points, so a
// bucket's points can be addressed by a single contiguous range rather
// than an explicit index list. Bucket ranges are stored as packed
// (start, len) pkg/zc.View values rather than two parallel int slices.
package leafstore

import (
	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/internal/memalign"
	"github.com/flier/kdtree/internal/simdscan"
	"github.com/flier/kdtree/metric"
	"github.com/flier/kdtree/pkg/zc"
)

// Store holds the K per-axis columns and the content column for every
// point the tree owns, partitioned into leaves by Offsets.
type Store[A constraints.Axis, C constraints.Content] struct {
	axis      [][]A
	items     []C
	offsets   []zc.View // one entry per leaf
	tileWidth int       // 0 selects simdscan.TileWidth
}

// SetTileWidth overrides the leaf-scan tile width, used by Tree.Build to
// apply WithSIMDTile. A width <= 0 restores the package default.
func (s *Store[A, C]) SetTileWidth(w int) { s.tileWidth = w }

// New builds a Store from K already-permuted axis columns, a
// correspondingly permuted items column, and a leaf_offsets table of
// length L+1 giving each leaf's half-open range within the columns.
//
// axis and items are taken by reference, not copied: New is meant to be
// called once, by the constructor, on arrays it already owns. rawOffsets
// is only read, to build the packed per-leaf ranges.
func New[A constraints.Axis, C constraints.Content](axis [][]A, items []C, rawOffsets []int) *Store[A, C] {
	bound := len(items)

	offsets := make([]zc.View, len(rawOffsets)-1)
	for i := range offsets {
		start := rawOffsets[i]
		end := rawOffsets[i+1]
		offsets[i] = zc.Raw(start, end-start, bound)
	}

	return &Store[A, C]{axis: axis, items: items, offsets: offsets}
}

// Leaves returns the number of leaves in the store.
func (s *Store[A, C]) Leaves() int { return len(s.offsets) }

// Len returns the total number of points across all leaves.
func (s *Store[A, C]) Len() int { return len(s.items) }

// Dims returns K, the number of axis columns.
func (s *Store[A, C]) Dims() int { return len(s.axis) }

// LeafSlice returns the K per-axis views and the items view covering leaf
// i. The returned slices alias the store's backing arrays; callers must
// not retain them past a mutating rebuild.
func (s *Store[A, C]) LeafSlice(i int) (perAxis [][]A, items []C) {
	v := s.offsets[i]
	start, end := v.Start(), v.End()

	perAxis = make([][]A, len(s.axis))
	for a, col := range s.axis {
		perAxis[a] = col[start:end]
	}

	return perAxis, s.items[start:end]
}

// ScanLeaf computes the metric distance from query to every point in leaf
// i and returns those distances alongside the leaf's content ids, tiling
// the work via internal/simdscan.
func ScanLeaf[A constraints.Axis, C constraints.Content](s *Store[A, C], m metric.Metric[A], i int, query []A, scratch []A) (dists []A, ids []C) {
	cols, items := s.LeafSlice(i)

	n := len(items)
	if cap(scratch) < n {
		scratch = make([]A, n)
	}
	dists = scratch[:n]

	simdscan.ScanBucket(m, query, cols, dists, s.tileWidth)

	return dists, items
}

// At returns the point and content id stored at the given row, in
// storage (permutation) order across all leaves.
func (s *Store[A, C]) At(row int) (point []A, id C) {
	point = make([]A, len(s.axis))
	for a, col := range s.axis {
		point[a] = col[row]
	}
	return point, s.items[row]
}

// Builder accumulates columnar axis data during construction before a
// Store is finalized. It exists so internal/construct can write directly
// into aligned backing arrays rather than building up per-point slices
// and copying them in afterward.
type Builder[A constraints.Axis, C constraints.Content] struct {
	axis  [][]A
	items []C
}

// NewBuilder allocates aligned backing storage for n points across k axis
// columns.
func NewBuilder[A constraints.Axis, C constraints.Content](n, k, alignBytes int) *Builder[A, C] {
	b := &Builder[A, C]{
		axis:  make([][]A, k),
		items: make([]C, n),
	}
	for a := range b.axis {
		b.axis[a] = memalign.Slice[A](n, alignBytes)
	}
	return b
}

// Axis returns the backing column for axis a, for in-place permutation by
// the constructor.
func (b *Builder[A, C]) Axis(a int) []A { return b.axis[a] }

// Items returns the backing content column, for in-place permutation by
// the constructor.
func (b *Builder[A, C]) Items() []C { return b.items }

// Build finalizes the builder into an immutable Store using the given
// leaf_offsets table.
func (b *Builder[A, C]) Build(rawOffsets []int) *Store[A, C] {
	return New[A, C](b.axis, b.items, rawOffsets)
}
