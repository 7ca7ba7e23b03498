package queryengine

import (
	"sort"

	"github.com/flier/kdtree/constraints"
)

// RadiusList accumulates every candidate within a fixed radius, backing
// both within and within_unsorted: the prune radius never tightens, so
// it visits exactly the subtrees that could hold a point within r, same
// set for either query.
type RadiusList[A constraints.Axis, C constraints.Content] struct {
	r     A
	items []Entry[A, C]
}

// NewRadiusList returns a RadiusList accumulator bounded to radius r.
func NewRadiusList[A constraints.Axis, C constraints.Content](r A) *RadiusList[A, C] {
	return &RadiusList[A, C]{r: r}
}

func (l *RadiusList[A, C]) PruneRadius() A { return l.r }

func (l *RadiusList[A, C]) Offer(dist A, id C) {
	if dist <= l.r {
		l.items = append(l.items, Entry[A, C]{Dist: dist, ID: id})
	}
}

// Result returns the accumulated neighbours in the order the descent
// happened to visit them, backing within_unsorted.
func (l *RadiusList[A, C]) Result() []Entry[A, C] { return l.items }

// Sorted returns the accumulated neighbours ordered by ascending
// distance, backing within.
func (l *RadiusList[A, C]) Sorted() []Entry[A, C] {
	out := make([]Entry[A, C], len(l.items))
	copy(out, l.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	return out
}
