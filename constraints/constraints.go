// Package constraints declares the generic type bounds shared across the
// kd-tree engine: the axis coordinate type and the content id type.
package constraints

import (
	"math"
	"unsafe"
)

// Axis is a finite ordered real type usable as a kd-tree coordinate.
//
// Only 32- and 64-bit IEEE-754 binary floating point are supported by this
// core; fixed-point and half-float axis types are an explicitly out-of-scope
// extension.
type Axis interface {
	~float32 | ~float64
}

// Content is an unsigned integer identifying a user object external to the
// tree. The tree stores only ids, never the objects they name.
type Content interface {
	~uint32 | ~uint64
}

// MaxFinite returns the largest finite value representable by A.
//
// It is used as the sentinel stem value for padding slots and as the
// initial "infinite" distance for an empty-accumulator query.
func MaxFinite[A Axis]() A {
	var z A

	if unsafe.Sizeof(z) == 4 {
		m := float32(math.MaxFloat32)
		return A(m)
	}
	m := float64(math.MaxFloat64)
	return A(m)
}

// Zero returns the zero value of A.
func Zero[A Axis]() A {
	var z A
	return z
}
