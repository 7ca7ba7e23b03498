// Package stemidx implements the stem array and index arithmetic
// component.
//
// A stem array is a flat array of split-plane values laid out so that
// descending from the root to any leaf touches as few cache lines as
// possible. Two physical orderings are supported, chosen at Build time:
//
//   - Eytzinger: the classic implicit binary-heap layout (root at index 1,
//     children of i at 2i and 2i+1).
//   - Modified van Emde Boas: stems are grouped into superblocks of F
//     consecutive tree levels, each superblock sized to fit exactly one
//     cache line (with its last slot deliberately left as padding so no
//     level straddles a line boundary).
//
// Both orderings expose the same Layout interface, so the query engine
// (internal/queryengine) and constructor (internal/construct) never need
// to know which physical ordering backs a given tree: they address stems
// purely by their logical Eytzinger index, and Layout translates that to
// a physical slot.
//
// This split keeps logical index and physical representation separate,
// the same way a tagged node reference hides its physical encoding
// behind a uniform accessor API.
package stemidx

import (
	"math/bits"

	"github.com/flier/kdtree/constraints"
)

// Layout is the storage-agnostic view of a stem array: callers address
// stems by logical Eytzinger index (root = 1, children of i = 2i, 2i+1);
// the implementation decides where that stem actually lives.
type Layout[A constraints.Axis] interface {
	// Get returns the split value stored at the given logical index.
	Get(logicalIndex int) A
	// Set stores a split value at the given logical index.
	Set(logicalIndex int, v A)
	// Leaves returns the number of leaves this layout was built for.
	Leaves() int
	// Depth returns ceil(log2(Leaves())), the number of stem comparisons
	// on any root-to-leaf path.
	Depth() int
}

// Depth returns ceil(log2(leaves)) for a leaf count that is a power of two
// (or 1).
func Depth(leaves int) int {
	if leaves <= 1 {
		return 0
	}
	return bits.Len(uint(leaves - 1))
}

// AxisOf returns the splitting axis used by the stem at the given logical
// index, in round-robin order by tree depth: the axis for a node at tree
// depth d is d mod k.
func AxisOf(logicalIndex, k int) int {
	depth := bits.Len(uint(logicalIndex)) - 1
	return depth % k
}

// Parent returns the logical index of i's parent. The root (i==1) has no
// parent; callers must not invoke Parent(1).
func Parent(i int) int { return i / 2 }

// Sibling returns the logical index of i's sibling (the other child of the
// same parent).
func Sibling(i int) int { return i ^ 1 }

// IsLeftChild reports whether i is its parent's left child.
func IsLeftChild(i int) bool { return i%2 == 0 }

// LeafFor descends the tree described by layout for the given query point,
// returning the 0-based leaf index it lands in.
//
// depth starts at 0 at the root; the axis used at each level is
// depth mod K, matching the round-robin convention construction used when
// building the stems.
func LeafFor[A constraints.Axis](layout Layout[A], point []A) int {
	i := 1
	d := layout.Depth()
	k := len(point)

	for depth := 0; depth < d; depth++ {
		axis := depth % k
		s := layout.Get(i)

		if point[axis] < s {
			i = 2 * i
		} else {
			i = 2*i + 1
		}
	}

	return i - layout.Leaves()
}
