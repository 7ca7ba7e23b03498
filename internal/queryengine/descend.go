package queryengine

import (
	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/internal/leafstore"
	"github.com/flier/kdtree/internal/simdscan"
	"github.com/flier/kdtree/internal/stemidx"
	"github.com/flier/kdtree/metric"
)

// Descend runs the shared best-first descent over layout/store for
// query, folding every leaf candidate into acc. scratch must have an Off
// vector of length len(query); it is reset to zero before the descent
// starts.
func Descend[A constraints.Axis, C constraints.Content](
	layout stemidx.Layout[A],
	store *leafstore.Store[A, C],
	m metric.Metric[A],
	query []A,
	acc Accumulator[A, C],
	scratch *Scratch[A],
) {
	dims := len(query)

	z := constraints.Zero[A]()
	for i := range scratch.Off {
		scratch.Off[i] = z
	}

	if layout.Leaves() <= 1 {
		leaf(store, m, query, acc, scratch, 0)
		return
	}

	visit(layout, store, m, query, acc, scratch, z, 1, 0, dims)
}

func leaf[A constraints.Axis, C constraints.Content](
	store *leafstore.Store[A, C],
	m metric.Metric[A],
	query []A,
	acc Accumulator[A, C],
	scratch *Scratch[A],
	index int,
) {
	dists, ids := leafstore.ScanLeaf(store, m, index, query, scratch.Leaf)
	scratch.Leaf = dists

	// nearest_one keeps at most one candidate per bucket, so the whole
	// scan folds down to a single horizontal reduction over the finished
	// distances instead of one Offer per point.
	if one, ok := acc.(*NearestOne[A, C]); ok && len(dists) > 0 {
		j, best := simdscan.BestInTile(dists)
		one.Offer(best, ids[j])
		return
	}

	for j, d := range dists {
		acc.Offer(d, ids[j])
	}
}

func visit[A constraints.Axis, C constraints.Content](
	layout stemidx.Layout[A],
	store *leafstore.Store[A, C],
	m metric.Metric[A],
	query []A,
	acc Accumulator[A, C],
	scratch *Scratch[A],
	rd A,
	i, depth, dims int,
) {
	if depth == layout.Depth() {
		leaf(store, m, query, acc, scratch, i-layout.Leaves())
		return
	}

	axis := depth % dims
	split := layout.Get(i)

	var near, far int
	if query[axis] < split {
		near, far = 2*i, 2*i+1
	} else {
		near, far = 2*i+1, 2*i
	}

	// Near side shares the parent's stopping distance unchanged: it lies
	// on the same side of the split as the query, so nothing in it is
	// pruned that wasn't already considered at the parent.
	visit(layout, store, m, query, acc, scratch, rd, near, depth+1, dims)

	// Far side: update this axis's running split-distance contribution
	// and recompute rd before testing whether it's still worth entering.
	oldDelta := scratch.Off[axis]
	newDelta := query[axis] - split
	newRD := m.Combine(m.Subtract(rd, m.AxisDist(oldDelta)), m.AxisDist(newDelta))

	// Equality descends both children: when newDelta is zero the far side
	// contributes no extra distance, so newRD <= rd and the prune test
	// below passes whenever the parent itself was worth entering.
	if newRD <= acc.PruneRadius() {
		scratch.Off[axis] = newDelta
		visit(layout, store, m, query, acc, scratch, newRD, far, depth+1, dims)
		scratch.Off[axis] = oldDelta
	}
}
