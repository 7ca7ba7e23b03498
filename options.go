package kdtree

import "github.com/flier/kdtree/internal/simdscan"

// buildConfig holds the resolved configuration for a single Build call.
// It is unexported: callers only ever interact with it through
// BuildOption.
type buildConfig struct {
	bucketCapacity int
	stemOrdering   StemOrdering
	simdTile       int
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		bucketCapacity: 32,
		stemOrdering:   Eytzinger,
		simdTile:       simdscan.TileWidth,
	}
}

// BuildOption customizes a Build call by mutating a buildConfig before
// construction begins.
type BuildOption func(*buildConfig)

// WithBucketCapacity sets the power-of-two leaf bucket target (default
// 32). An invalid value is not rejected here — functional options only
// set state; Build validates the final configuration once, in one
// place, before doing any work.
func WithBucketCapacity(n int) BuildOption {
	return func(c *buildConfig) { c.bucketCapacity = n }
}

// WithStemOrdering selects between Eytzinger (default) and
// ModifiedVanEmdeBoas stem layouts.
func WithStemOrdering(o StemOrdering) BuildOption {
	return func(c *buildConfig) { c.stemOrdering = o }
}

// WithSIMDTile overrides the leaf-scan tile width. The default is
// simdscan.TileWidth (8 lanes) for every axis type and target; it is not
// chosen from the axis type or the CPU.
func WithSIMDTile(lanes int) BuildOption {
	return func(c *buildConfig) { c.simdTile = lanes }
}
