//go:build amd64
// +build amd64

// Package simdscan: this file documents the AMD64-specific horizontal
// reduction over a finished distance tile.
//
// An AVX2 implementation (horizontal min + lane index via VPMINSD/VPCMPEQD)
// would reduce a TileWidth-wide tile in one pass instead of TileWidth
// scalar comparisons. That implementation is not wired in: it remains an
// open question whether it is worth the added complexity, and the scalar
// reduction below is correct and already branch-predictable for the tile
// sizes this package uses.
package simdscan

import "github.com/flier/kdtree/constraints"

// BestInTile returns the index and value of the smallest distance in a
// finished tile of up to TileWidth results.
//
// Temporary: falls back to the scalar reduction for correctness until an
// AVX2 version is written and validated.
func BestInTile[A constraints.Axis](acc []A) (int, A) {
	return bestInTileScalar(acc)
}
