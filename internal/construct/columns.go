package construct

import (
	"errors"

	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/pkg/opt"
	"github.com/flier/kdtree/pkg/res"
)

// errEmptyRange is the internal quickselect precondition failure: it can
// never actually occur because partition only ever calls into a subrange
// known to hold at least one point, but recording it as a res.Result
// keeps that invariant checked rather than assumed.
var errEmptyRange = errors.New("construct: rank selection over an empty range")

// columns is the mutable working view over the K axis columns and the
// items column during construction. All columns share the same
// permutation at all times: swapping row i and j means swapping index i
// and j in every column simultaneously (the "mirror partition").
type columns[A constraints.Axis, C constraints.Content] struct {
	axis  [][]A
	items []C
}

func (c *columns[A, C]) swap(i, j int) {
	if i == j {
		return
	}
	for _, col := range c.axis {
		col[i], col[j] = col[j], col[i]
	}
	c.items[i], c.items[j] = c.items[j], c.items[i]
}

// medianOfThree returns the median of col[lo], col[mid], col[hi-1],
// without moving any elements. It exists purely to pick a pivot value
// that is reasonably resistant to already-sorted or reverse-sorted
// input; the returned value need not occur at any particular index.
func medianOfThree[A constraints.Axis](col []A, lo, hi int) A {
	mid := lo + (hi-lo)/2
	a, b, c := col[lo], col[mid], col[hi-1]

	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return b
}

// threeWayPartition rearranges columns in [lo, hi) so that values less
// than pivot on the given axis come first, values equal to pivot come
// next, and values greater than pivot come last (the classic Dutch
// national flag partition). It returns the absolute boundaries ltEnd
// (start of the equal zone) and eqEnd (start of the greater zone).
//
// This is the primitive that makes duplicate handling correct: the equal
// zone is never hidden on one side, so the caller can cut it at any
// point to hit an exact desired count.
func threeWayPartition[A constraints.Axis, C constraints.Content](c *columns[A, C], axis, lo, hi int, pivot A) (ltEnd, eqEnd int) {
	col := c.axis[axis]

	low, mid, high := lo, lo, hi-1
	for mid <= high {
		switch v := col[mid]; {
		case v < pivot:
			c.swap(low, mid)
			low++
			mid++
		case v == pivot:
			mid++
		default:
			c.swap(mid, high)
			high--
		}
	}

	return low, mid
}

// scanMin returns the minimum value on the given axis over [lo, hi),
// without reordering anything. It backs the edge case where a desired
// split sends every point to the right side: a split with q_left == 0
// needs no partitioning work, only a split value consistent with the
// invariant that every right-subtree point is >= it.
func scanMin[A constraints.Axis](col []A, lo, hi int) A {
	m := col[lo]
	for i := lo + 1; i < hi; i++ {
		if col[i] < m {
			m = col[i]
		}
	}
	return m
}

// degenerateValue reports whether every value on the given axis in
// [lo, hi) is identical, returning that value if so: a degenerate axis
// provides no discrimination. A single linear scan answers this without
// running quickselect to discover the same fact the hard way.
func degenerateValue[A constraints.Axis, C constraints.Content](c *columns[A, C], axis, lo, hi int) opt.Option[A] {
	col := c.axis[axis]
	v := col[lo]
	for i := lo + 1; i < hi; i++ {
		if col[i] != v {
			return opt.None[A]()
		}
	}
	return opt.Some(v)
}

// selectRank performs an in-place, columnar quickselect on the given
// axis: after it returns, position n (lo <= n < hi) holds an order
// statistic such that every element in [lo, n] is <= col[n] and every
// element in [n, hi) is >= col[n], applied to all parallel columns via
// the mirror swap.
//
// When an entire subrange is degenerate on this axis (every value
// equal), degenerateValue detects it up front and selectRank returns
// that value without moving anything — no further splitting is possible
// for duplicates, so the points simply fill out the desired-quantity
// allocation.
func selectRank[A constraints.Axis, C constraints.Content](c *columns[A, C], axis, lo, hi, n int) A {
	if hi <= lo {
		return rankResult[A, C](c, axis, lo, hi).Unwrap()
	}

	if deg := degenerateValue[A, C](c, axis, lo, hi); deg.IsSome() {
		return deg.Unwrap()
	}

	for hi-lo > 1 {
		pivot := medianOfThree(c.axis[axis], lo, hi)
		ltEnd, eqEnd := threeWayPartition(c, axis, lo, hi, pivot)

		switch {
		case n < ltEnd:
			hi = ltEnd
		case n < eqEnd:
			return pivot
		default:
			lo = eqEnd
		}
	}

	return c.axis[axis][lo]
}

// rankResult wraps the empty-range precondition failure as a res.Result,
// collapsing an internal fallible step to a checked value rather than a
// bare panic; partition never actually calls selectRank with an empty
// range, so this path is unreachable in practice but checked rather than
// assumed.
func rankResult[A constraints.Axis, C constraints.Content](c *columns[A, C], axis, lo, hi int) res.Result[A] {
	return res.Err[A](errEmptyRange)
}

// splitValue computes the stem value and the physical boundary index for
// a node whose left subtree must receive exactly qLeft of the qLeft+qRight
// points in [lo, hi) on the given axis, performing the minimum work (and
// the minimum number of swaps) needed to reach that boundary.
//
// The stem value is the rank-qLeft order statistic: the smallest value on
// the RIGHT side of the cut, not the largest on the left. Descent sends a
// coordinate equal to the stem value right, so the stem must equal the
// first right-side value or a point sitting exactly on the boundary would
// be stored left but searched for on the right.
func splitValue[A constraints.Axis, C constraints.Content](c *columns[A, C], axis, lo, hi, qLeft int) (pivot A, boundary int) {
	total := hi - lo

	switch {
	case total == 0:
		// The desired-quantity plan gave this whole subtree zero points
		// (leafCount rounds L up to a power of two, which can leave
		// trailing leaves past N with a quantity of 0). There is no
		// point left to rank against, and the split value is never
		// tested against a real point, so it uses the same sentinel the
		// stem array's own out-of-range padding slots use.
		return constraints.MaxFinite[A](), lo
	case qLeft == 0:
		return scanMin(c.axis[axis], lo, hi), lo
	case qLeft == total:
		// Everything goes left; there is no right-side value to take the
		// rank from. The sentinel routes any finite coordinate left, the
		// same way the stem array's own padding slots do.
		return constraints.MaxFinite[A](), hi
	default:
		n := lo + qLeft
		return selectRank(c, axis, lo, hi, n), n
	}
}
