// Package memalign allocates slices whose backing storage starts on a
// requested byte boundary, sufficient for the widest SIMD load the
// target CPU can perform, for the tree's stem array and leaf columns.
//
// It uses the ordinary, well-understood "over-allocate and trim to an
// aligned sub-slice" idiom, built on pkg/xunsafe (pointer.go's Cast) and
// pkg/xunsafe/layout's Size helper. See DESIGN.md for why this does not
// reuse a tagged-pointer bump allocator instead.
package memalign

import (
	"unsafe"

	"github.com/flier/kdtree/pkg/xunsafe"
	"github.com/flier/kdtree/pkg/xunsafe/layout"
)

// addrOf returns the address of p's first element as a plain integer,
// via the self-contained (non-Addr[T]) half of pkg/xunsafe: casting to a
// byte pointer sidesteps taking the address of a generic T directly.
func addrOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(xunsafe.Cast[byte](p)))
}

// Cacheline is the alignment used on mainstream architectures.
const Cacheline = 64

// WideCacheline is the alignment used on wide-cacheline architectures.
const WideCacheline = 128

// Slice allocates a slice of n elements of T whose first element's address
// is a multiple of alignBytes.
//
// alignBytes must be a power of two; it is the caller's responsibility to
// pass one of Cacheline or WideCacheline (or another power-of-two SIMD
// width). n may be zero, in which case an empty, still-aligned-by-contract
// slice is returned.
func Slice[T any](n, alignBytes int) []T {
	if n <= 0 {
		return make([]T, 0)
	}

	size := layout.Size[T]()
	if size == 0 || alignBytes <= size {
		// Either a zero-size element type, or the natural Go allocator
		// alignment (which is at least the element's own alignment)
		// already satisfies the request.
		return make([]T, n)
	}

	// Reserve enough slack elements to guarantee we can find an aligned
	// start no matter where the runtime places the backing array.
	pad := (alignBytes + size - 1) / size
	buf := make([]T, n+pad)

	addr := addrOf(&buf[0])
	misalign := int(addr % uintptr(alignBytes))
	if misalign == 0 {
		return buf[:n:n]
	}

	skipBytes := alignBytes - misalign
	skip := (skipBytes + size - 1) / size

	return buf[skip : skip+n : skip+n]
}

// IsAligned reports whether s's backing storage starts on an alignBytes
// boundary. Intended for assertions and tests, not hot-path use.
func IsAligned[T any](s []T, alignBytes int) bool {
	if len(s) == 0 {
		return true
	}
	return addrOf(&s[0])%uintptr(alignBytes) == 0
}
