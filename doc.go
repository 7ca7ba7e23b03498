// Package kdtree implements an immutable, construction-balanced
// k-dimensional tree for spatial nearest-neighbour search over
// low-to-moderate dimensional (2-4) floating-point points.
//
// A Tree is built once from an ordered sequence of points via Build, and
// is thereafter deeply immutable: every exported query method is safe to
// call concurrently from any number of goroutines without synchronisation.
// There is no insert/remove/update interface.
//
// The tree is organised as a flat stem array (package internal/stemidx)
// addressing a columnar leaf store (package internal/leafstore), built by
// a bottom-up bucket-packing constructor (package internal/construct) and
// walked by a shared best-first descent (package internal/queryengine).
// None of that machinery is exported; callers only ever see Tree and the
// result types below.
package kdtree
