// Package simdscan implements the tile-based leaf scan primitive:
// per-axis distance accumulation over a bucket, tiled to a fixed,
// never-heap-allocated width W, plus a horizontal reduction that picks
// the best (smallest) distance out of a finished tile.
//
// The split between TileWidth-wide accumulation (scan.go, portable) and
// the horizontal reduction (best_*.go, architecture-split) leaves a fast
// architecture-specific path declared but deliberately disabled pending
// validation: both amd64 and non-amd64 builds fall through to the same
// scalar implementation (see best_amd64.go).
package simdscan
