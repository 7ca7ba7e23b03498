package queryengine

import (
	"container/heap"
	"sort"

	"github.com/flier/kdtree/constraints"
)

// distHeap is a bounded max-heap of Entry keyed by Dist: the top of the
// heap is always the current worst (largest-distance) member, so it's
// the one evicted when a closer candidate arrives.
type distHeap[A constraints.Axis, C constraints.Content] []Entry[A, C]

func (h distHeap[A, C]) Len() int            { return len(h) }
func (h distHeap[A, C]) Less(i, j int) bool  { return h[i].Dist > h[j].Dist }
func (h distHeap[A, C]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap[A, C]) Push(x any)          { *h = append(*h, x.(Entry[A, C])) }
func (h *distHeap[A, C]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// NearestN accumulates the k closest candidates seen, via a bounded
// max-heap so the prune radius tightens as soon as k candidates have
// been found.
type NearestN[A constraints.Axis, C constraints.Content] struct {
	k int
	h distHeap[A, C]
}

// NewNearestN returns a NearestN accumulator bounded to k results. k must
// be a strictly positive integer; callers are expected to have validated
// that at the API boundary.
func NewNearestN[A constraints.Axis, C constraints.Content](k int) *NearestN[A, C] {
	return &NearestN[A, C]{k: k, h: make(distHeap[A, C], 0, k)}
}

func (n *NearestN[A, C]) PruneRadius() A {
	if len(n.h) < n.k {
		return constraints.MaxFinite[A]()
	}
	return n.h[0].Dist
}

func (n *NearestN[A, C]) Offer(dist A, id C) {
	if len(n.h) < n.k {
		heap.Push(&n.h, Entry[A, C]{Dist: dist, ID: id})
		return
	}
	if dist < n.h[0].Dist {
		heap.Pop(&n.h)
		heap.Push(&n.h, Entry[A, C]{Dist: dist, ID: id})
	}
}

// Result returns the accumulated neighbours ordered by ascending
// distance.
func (n *NearestN[A, C]) Result() []Entry[A, C] {
	out := make([]Entry[A, C], len(n.h))
	copy(out, n.h)
	sort.Slice(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	return out
}
