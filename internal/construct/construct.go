package construct

import (
	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/internal/debug"
	"github.com/flier/kdtree/internal/leafstore"
	"github.com/flier/kdtree/internal/stemidx"
)

// LayoutFactory allocates a stem Layout for a given leaf count and
// alignment. Tree.Build passes in stemidx.NewEytzinger or stemidx.NewVEB
// depending on the configured stem ordering.
type LayoutFactory[A constraints.Axis] func(leaves, alignBytes int) stemidx.Layout[A]

// Build packs n points (each of the given number of dimensions) into a
// balanced stem layout and columnar leaf store.
//
// points and ids are read but not retained; their values are copied into
// the constructor's own aligned backing arrays before any permutation
// happens, so the caller's slices are left untouched.
func Build[A constraints.Axis, C constraints.Content](
	points [][]A,
	ids []C,
	dims, bucketCapacity, alignBytes int,
	newLayout LayoutFactory[A],
) (stemidx.Layout[A], *leafstore.Store[A, C]) {
	n := len(points)
	leaves := leafCount(n, bucketCapacity)
	debug.Log(nil, "plan", "n=%d b=%d -> leaves=%d", n, bucketCapacity, leaves)

	layout := newLayout(leaves, alignBytes)

	builder := leafstore.NewBuilder[A, C](n, dims, alignBytes)
	for i, p := range points {
		for a := 0; a < dims; a++ {
			builder.Axis(a)[i] = p[a]
		}
		builder.Items()[i] = ids[i]
	}

	cols := &columns[A, C]{axis: make([][]A, dims), items: builder.Items()}
	for a := range cols.axis {
		cols.axis[a] = builder.Axis(a)
	}

	q := desiredQuantities(n, leaves)

	if leaves > 1 {
		partition(cols, layout, dims, 1, 0, n, 0, leaves, q)
	}

	rawOffsets := make([]int, leaves+1)
	for i, v := range q {
		rawOffsets[i+1] = rawOffsets[i] + v
	}

	return layout, builder.Build(rawOffsets)
}

// partition recursively packs the point range [lo, hi) — which must hold
// exactly sum(q[leafLo:leafHi]) points — into the leaves [leafLo, leafHi),
// writing one stem per internal node it creates.
func partition[A constraints.Axis, C constraints.Content](
	c *columns[A, C],
	layout stemidx.Layout[A],
	dims, stem, lo, hi, leafLo, leafHi int,
	q []int,
) {
	if leafHi-leafLo == 1 {
		return
	}

	mid := leafLo + (leafHi-leafLo)/2

	qLeft := 0
	for _, v := range q[leafLo:mid] {
		qLeft += v
	}

	axis := stemidx.AxisOf(stem, dims)
	pivot, boundary := splitValue(c, axis, lo, hi, qLeft)
	layout.Set(stem, pivot)

	partition(c, layout, dims, 2*stem, lo, boundary, leafLo, mid, q)
	partition(c, layout, dims, 2*stem+1, boundary, hi, mid, leafHi, q)
}
