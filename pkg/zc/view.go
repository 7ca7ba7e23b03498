// Package zc packs a leaf's point-index range into a single compact
// value.
//
// A View never points at a byte buffer; it indexes a leaf store's
// parallel []A/[]C columns, which leafstore.Store slices directly with
// ordinary Go slice expressions. Packing both halves of the range into
// one uint64 keeps the per-leaf offset table at one word per leaf, and
// the range is asserted in-bounds once at construction instead of
// trusting every caller to get the offset arithmetic right.
package zc

import (
	"fmt"

	"github.com/flier/kdtree/internal/debug"
)

// View is a packed, half-open [start, end) range into a leaf store's
// columns: a representation of (offset, length) as a single uint64 with
// the layout
//
//	struct {
//	  offset, length uint32
//	}
//
// The zero value faithfully represents an empty range at offset 0.
type View uint64

// Raw packs offset and length into a View, asserting the resulting range
// lies inside [0, bound) — bound is normally the store's total point
// count, so this checks that every leaf's range is a sub-range of
// [0, N) once, at construction, rather than trusting it to hold at
// every later Start()/End() call site.
func Raw(offset, length, bound int) View {
	debug.Assert(offset >= 0 && length >= 0 && offset+length <= bound,
		"zc: leaf range [%d:%d) escapes store bound %d", offset, offset+length, bound)

	return View(uint32(offset)) | View(uint32(length))<<32
}

// Start returns the start offset of this range within its store.
func (r View) Start() int { return int(uint32(r)) }

// Len returns the length of this range.
func (r View) Len() int { return int(r >> 32) }

// End returns the end offset (exclusive) of this range within its store.
func (r View) End() int { return r.Start() + r.Len() }

// Format implements [fmt.Formatter], rendering a View the way a Go slice
// expression would.
func (r View) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, "[%d:%d]", r.Start(), r.End())
	_ = verb
}
