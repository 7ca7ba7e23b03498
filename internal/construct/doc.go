// Package construct implements the bottom-up bucket-packing constructor:
// given N input points, it chooses leaf bucket boundaries and stem split
// values so that all N points end up packed into exactly
// L = ceil(N/bucket_capacity) (rounded up to a power of two) leaves under
// a perfectly balanced tree, correctly handling heavy duplicate
// coordinates along the way.
//
// The recursive partition is an in-place three-way rank selection: the
// "mirror partition" primitive (columns.go) applies the identical swap
// sequence to K+1 parallel arrays instead of one, eagerly, in place.
package construct
