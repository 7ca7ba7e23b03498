//go:build go1.21

// Package layout includes helpers for working with type layouts.
//
// It is separate from xunsafe, because nothing in this package is actually
// unsafe.
//
// Only Size is provided: it is the one helper internal/memalign needs
// to decide how much slack to over-allocate for an aligned slice.
package layout

import "unsafe"

// Size returns T's size in bytes.
func Size[T any]() int {
	var z T

	return int(unsafe.Sizeof(z))
}
