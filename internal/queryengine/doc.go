// Package queryengine implements the shared best-first descent and its
// five specialisations.
//
// Every query walks the same skeleton: descend the near child
// unconditionally, then decide whether the far child can possibly hold
// anything closer than the current worst accepted candidate by comparing
// a running stopping-distance rd against the accumulator's current prune
// radius. What differs between nearest_one, nearest_n, within,
// within_unsorted and best_n_within is only the accumulator: what it
// keeps, and what radius it reports back to the descent.
//
// The bounded heap accumulators use container/heap.Interface, adapted
// from a min-heap over edge weight (the classic shortest-edge priority
// queue): NearestN keeps a bounded max-heap over neighbour distance, and
// BestNWithin a bounded min-heap over rank, so in both the heap top is
// the member evicted next.
package queryengine
