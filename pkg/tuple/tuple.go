// A finite heterogeneous sequence, (T0, T1, ..).
//
// Only Tuple2 is provided: it is the one arity iter.go's ItemTuples
// needs to pair a point with its content id.
package tuple

import "fmt"

type Tuple2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

func New2[T0, T1 any](v0 T0, v1 T1) Tuple2[T0, T1] {
	return Tuple2[T0, T1]{v0, v1}
}

func (t Tuple2[T0, T1]) Unpack() (T0, T1) { return t.V0, t.V1 }
func (t Tuple2[T0, T1]) String() string   { return fmt.Sprintf("(%v, %v)", t.V0, t.V1) }
