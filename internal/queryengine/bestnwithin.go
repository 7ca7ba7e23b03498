package queryengine

import (
	"container/heap"
	"sort"

	"github.com/flier/kdtree/constraints"
)

// RankEntry pairs a content id with a user-supplied rank.
type RankEntry[A constraints.Axis, C constraints.Content] struct {
	Rank A
	ID   C
}

// rankHeap is a bounded min-heap of RankEntry keyed by Rank: the top of
// the heap is the current worst (lowest-rank) member, evicted when a
// higher-rank candidate arrives within the radius.
type rankHeap[A constraints.Axis, C constraints.Content] []RankEntry[A, C]

func (h rankHeap[A, C]) Len() int           { return len(h) }
func (h rankHeap[A, C]) Less(i, j int) bool { return h[i].Rank < h[j].Rank }
func (h rankHeap[A, C]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *rankHeap[A, C]) Push(x any)        { *h = append(*h, x.(RankEntry[A, C])) }
func (h *rankHeap[A, C]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// BestNWithin accumulates the k highest-rank candidates within a fixed
// radius. Pruning is purely distance-based — rank plays no part in which
// subtrees get visited, only in which candidates survive once inside the
// radius.
type BestNWithin[A constraints.Axis, C constraints.Content] struct {
	r      A
	k      int
	rankOf func(id C, dist A) A
	h      rankHeap[A, C]
}

// NewBestNWithin returns a BestNWithin accumulator bounded to radius r
// and k results, using rankOf to compute each candidate's rank.
func NewBestNWithin[A constraints.Axis, C constraints.Content](r A, k int, rankOf func(id C, dist A) A) *BestNWithin[A, C] {
	return &BestNWithin[A, C]{r: r, k: k, rankOf: rankOf, h: make(rankHeap[A, C], 0, k)}
}

func (b *BestNWithin[A, C]) PruneRadius() A { return b.r }

func (b *BestNWithin[A, C]) Offer(dist A, id C) {
	if dist > b.r {
		return
	}

	rk := b.rankOf(id, dist)

	if len(b.h) < b.k {
		heap.Push(&b.h, RankEntry[A, C]{Rank: rk, ID: id})
		return
	}
	if rk > b.h[0].Rank {
		heap.Pop(&b.h)
		heap.Push(&b.h, RankEntry[A, C]{Rank: rk, ID: id})
	}
}

// Result returns the accumulated neighbours ordered by descending rank.
func (b *BestNWithin[A, C]) Result() []RankEntry[A, C] {
	out := make([]RankEntry[A, C], len(b.h))
	copy(out, b.h)
	sort.Slice(out, func(i, j int) bool { return out[i].Rank > out[j].Rank })
	return out
}
