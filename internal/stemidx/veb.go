package stemidx

import (
	"math/bits"
	"unsafe"

	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/internal/memalign"
)

// VEB is the modified van Emde Boas stem layout: stems are grouped into
// superblocks of F consecutive tree levels, each superblock padded to
// occupy exactly one cache line, so a root-to-leaf descent pulls in
// roughly one cache line per F levels instead of one per level.
//
// Traversal logic is unchanged from Eytzinger — the same "depth mod K"
// round-robin descent computes the same sequence of logical indices. What
// differs is purely where each logical index's value physically lives,
// captured by a permutation built once at construction time. A fully
// branchless "child-of" mapping and its inverse would avoid the
// indirection below, but the branchless arithmetic is fragile and its
// benefit workload-dependent, so trading it for a precomputed permutation
// and a single indirection at query time is a deliberate simplification
// rather than an oversight.
type VEB[A constraints.Axis] struct {
	s          []A
	perm       []int32 // logical eytzinger index -> physical slot
	leaves     int
	depth      int
	slotsPerLn int
}

var _ Layout[float64] = (*VEB[float64])(nil)

// NewVEB allocates a van Emde Boas stem array for a tree with the given
// number of leaves, using F levels per cacheline of alignBytes bytes
// holding elements of size sizeof(A).
func NewVEB[A constraints.Axis](leaves, alignBytes int) *VEB[A] {
	depth := Depth(leaves)
	slotsPerLine := slotsPerLine[A](alignBytes)
	f := groupDepth(slotsPerLine)

	size, perm := buildPermutation(depth, f)

	v := &VEB[A]{
		leaves:     leaves,
		depth:      depth,
		slotsPerLn: slotsPerLine,
		perm:       perm,
	}

	if size > 0 {
		v.s = memalign.Slice[A](size, alignBytes)
	}
	sentinel := constraints.MaxFinite[A]()
	for i := range v.s {
		v.s[i] = sentinel
	}

	return v
}

func (v *VEB[A]) Get(logicalIndex int) A { return v.s[v.perm[logicalIndex]] }
func (v *VEB[A]) Set(logicalIndex int, val A) { v.s[v.perm[logicalIndex]] = val }
func (v *VEB[A]) Leaves() int              { return v.leaves }
func (v *VEB[A]) Depth() int               { return v.depth }

// slotsPerLine is the number of A-sized elements that fit in an
// alignBytes-byte cache line.
func slotsPerLine[A constraints.Axis](alignBytes int) int {
	var z A
	size := int(sizeOf(z))
	if size == 0 {
		return 1
	}
	n := alignBytes / size
	if n < 1 {
		n = 1
	}
	return n
}

func sizeOf[A constraints.Axis](z A) uintptr {
	return unsafe.Sizeof(z)
}

// groupDepth returns F, the number of tree levels packed into one
// superblock, such that a full superblock (2^F - 1 stems, one padding
// slot) fits in slotsPerLine elements: 2^F <= slotsPerLine.
func groupDepth(slotsPerLine int) int {
	f := 0
	for (1 << (f + 1)) <= slotsPerLine {
		f++
	}
	if f < 1 {
		f = 1
	}
	return f
}

// buildPermutation recursively lays out a complete stem tree of the given
// total depth into superblocks of at most f levels each, returning the
// total backing-array size (stems plus cacheline padding) and a
// permutation indexed by local eytzinger index (1..2^depth-1) giving the
// physical slot, relative to the start of this subtree's own storage.
//
// perm has length 1<<depth; perm[0] is unused.
func buildPermutation(depth, f int) (size int, perm []int32) {
	if depth == 0 {
		return 0, nil
	}

	chunkDepth := depth
	if chunkDepth > f {
		chunkDepth = f
	}

	// Every chunk gets one padding slot: a full chunk fills exactly one
	// cacheline, and a shallower chunk occupies a power-of-two share of
	// one, so no chunk straddles a line boundary.
	chunkSlots := 1 << chunkDepth

	perm = make([]int32, 1<<depth)
	for i := 1; i < (1 << chunkDepth); i++ {
		perm[i] = int32(i - 1)
	}

	offset := chunkSlots
	remaining := depth - chunkDepth

	if remaining > 0 {
		childSize, childPerm := buildPermutation(remaining, f)
		numChildren := 1 << chunkDepth

		for c := 0; c < numChildren; c++ {
			childBase := offset + c*childSize
			leafRoot := (1 << chunkDepth) + c

			for j := 1; j < len(childPerm); j++ {
				jDepth := bits.Len(uint(j)) - 1
				global := leafRoot*(1<<jDepth) + (j - (1 << jDepth))
				perm[global] = int32(childBase) + childPerm[j]
			}
		}

		offset += numChildren * childSize
	}

	return offset, perm
}
