//go:build !amd64
// +build !amd64

package simdscan

import "github.com/flier/kdtree/constraints"

// BestInTile returns the index and value of the smallest distance in a
// finished tile of up to TileWidth results.
func BestInTile[A constraints.Axis](acc []A) (int, A) {
	return bestInTileScalar(acc)
}
