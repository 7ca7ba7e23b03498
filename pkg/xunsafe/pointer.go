//go:build go1.23

// Package xunsafe holds the repo's one unsafe pointer helper: plain
// *T-to-*T casting. internal/memalign is its only caller.
package xunsafe

import "unsafe"

// Cast casts one pointer type to another.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}
