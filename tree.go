package kdtree

import (
	"github.com/flier/kdtree/constraints"
	"github.com/flier/kdtree/internal/construct"
	"github.com/flier/kdtree/internal/leafstore"
	"github.com/flier/kdtree/internal/memalign"
	"github.com/flier/kdtree/internal/queryengine"
	"github.com/flier/kdtree/internal/stemidx"
	"github.com/flier/kdtree/internal/xsync"
	"github.com/flier/kdtree/metric"
)

// Tree is an immutable, construction-balanced k-d tree over points of
// axis type A, identified by content ids of type C, queried under metric
// M. Once built, every method is safe to call concurrently from any
// number of goroutines.
type Tree[A constraints.Axis, C constraints.Content, M metric.Metric[A]] struct {
	dims        int
	layout      stemidx.Layout[A]
	store       *leafstore.Store[A, C]
	scratchPool *xsync.Pool[queryengine.Scratch[A]]
}

// Build constructs a Tree from an ordered sequence of points and their
// ids. points and ids need not be the same slice the caller continues to
// use: their values are copied into the tree's own columnar storage
// during construction.
func Build[A constraints.Axis, C constraints.Content, M metric.Metric[A]](points []Point[A], ids []C, dims int, opts ...BuildOption) (*Tree[A, C, M], error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.bucketCapacity <= 0 {
		return nil, &ConfigError{Err: ErrZeroCapacity, Got: cfg.bucketCapacity}
	}
	if cfg.bucketCapacity&(cfg.bucketCapacity-1) != 0 {
		return nil, &ConfigError{Err: ErrNonPowerOfTwoCapacity, Got: cfg.bucketCapacity}
	}
	if dims < 1 {
		return nil, &ConfigError{Err: ErrInvalidDimension, Got: dims}
	}

	raw := make([][]A, len(points))
	for i, p := range points {
		raw[i] = p
	}

	var newLayout construct.LayoutFactory[A]
	switch cfg.stemOrdering {
	case ModifiedVanEmdeBoas:
		newLayout = func(leaves, align int) stemidx.Layout[A] { return stemidx.NewVEB[A](leaves, align) }
	default:
		newLayout = func(leaves, align int) stemidx.Layout[A] { return stemidx.NewEytzinger[A](leaves, align) }
	}

	layout, store := construct.Build[A, C](raw, ids, dims, cfg.bucketCapacity, memalign.Cacheline, newLayout)
	store.SetTileWidth(cfg.simdTile)

	return &Tree[A, C, M]{
		dims:        dims,
		layout:      layout,
		store:       store,
		scratchPool: queryengine.NewScratchPool[A](dims),
	}, nil
}

// Len returns the number of points stored in the tree.
func (t *Tree[A, C, M]) Len() int { return t.store.Len() }

// IsEmpty reports whether the tree holds no points.
func (t *Tree[A, C, M]) IsEmpty() bool { return t.Len() == 0 }

// Dims returns the tree's configured dimension K.
func (t *Tree[A, C, M]) Dims() int { return t.dims }

func (t *Tree[A, C, M]) descend(query Point[A], acc queryengine.Accumulator[A, C]) {
	var m M
	s := t.scratchPool.Get()
	defer t.scratchPool.Put(s)

	if cap(s.Off) < t.dims {
		s.Off = make([]A, t.dims)
	}
	s.Off = s.Off[:t.dims]

	queryengine.Descend[A, C](t.layout, t.store, m, []A(query), acc, s)
}

// NearestOne returns the single closest point to query. On an empty
// tree it returns the sentinel neighbour with distance +largest_finite.
func (t *Tree[A, C, M]) NearestOne(query Point[A]) Neighbour[A, C] {
	acc := queryengine.NewNearestOne[A, C]()
	t.descend(query, acc)

	dist, id, _ := acc.Result()
	return Neighbour[A, C]{Distance: dist, Item: id}
}

// NearestN returns the k closest points to query, ordered by ascending
// distance. k must be a strictly positive integer; NearestN panics
// otherwise rather than returning an error for a programmer mistake.
func (t *Tree[A, C, M]) NearestN(query Point[A], k int) []Neighbour[A, C] {
	if k < 1 {
		panic("kdtree: NearestN: k must be >= 1")
	}

	acc := queryengine.NewNearestN[A, C](k)
	t.descend(query, acc)

	return toNeighbours[A, C](acc.Result())
}

// Within returns every point within radius r of query, ordered by
// ascending distance.
func (t *Tree[A, C, M]) Within(query Point[A], r A) []Neighbour[A, C] {
	list := queryengine.NewRadiusList[A, C](r)
	t.descend(query, list)

	return toNeighbours[A, C](list.Sorted())
}

// WithinUnsorted returns every point within radius r of query, in
// descent-visitation order.
func (t *Tree[A, C, M]) WithinUnsorted(query Point[A], r A) []Neighbour[A, C] {
	list := queryengine.NewRadiusList[A, C](r)
	t.descend(query, list)

	return toNeighbours[A, C](list.Result())
}

// BestNWithin returns the k points within radius r of query with the
// highest rank, as computed by the caller-supplied rank function,
// ordered by descending rank. k must be a strictly positive integer;
// see NearestN.
func (t *Tree[A, C, M]) BestNWithin(query Point[A], r A, k int, rank func(id C, dist A) A) []BestNeighbour[A, C] {
	if k < 1 {
		panic("kdtree: BestNWithin: k must be >= 1")
	}

	acc := queryengine.NewBestNWithin[A, C](r, k, rank)
	t.descend(query, acc)

	entries := acc.Result()
	out := make([]BestNeighbour[A, C], len(entries))
	for i, e := range entries {
		out[i] = BestNeighbour[A, C]{Item: e.ID, Rank: e.Rank}
	}
	return out
}

func toNeighbours[A constraints.Axis, C constraints.Content](entries []queryengine.Entry[A, C]) []Neighbour[A, C] {
	out := make([]Neighbour[A, C], len(entries))
	for i, e := range entries {
		out[i] = Neighbour[A, C]{Distance: e.Dist, Item: e.ID}
	}
	return out
}
