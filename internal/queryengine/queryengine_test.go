package queryengine_test

import (
	"math/rand"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/kdtree/internal/construct"
	"github.com/flier/kdtree/internal/leafstore"
	"github.com/flier/kdtree/internal/queryengine"
	"github.com/flier/kdtree/internal/stemidx"
	"github.com/flier/kdtree/metric"
)

func buildTestTree(points [][]float64, bucketCapacity int) (stemidx.Layout[float64], *leafstore.Store[float64, uint32]) {
	ids := make([]uint32, len(points))
	for i := range ids {
		ids[i] = uint32(i)
	}

	return construct.Build[float64, uint32](points, ids, len(points[0]), bucketCapacity, 64,
		func(leaves, align int) stemidx.Layout[float64] {
			return stemidx.NewEytzinger[float64](leaves, align)
		})
}

func bruteForceNearest(points [][]float64, query []float64) (float64, int) {
	best := -1.0
	bestIdx := -1
	for i, p := range points {
		d := sqDist(p, query)
		if bestIdx == -1 || d < best {
			best = d
			bestIdx = i
		}
	}
	return best, bestIdx
}

func sqDist(a, b []float64) float64 {
	return metric.SquaredEuclidean[float64]{}.PointDist(a, b)
}

func TestNearestOneAgreesWithBruteForce(t *testing.T) {
	Convey("Given 2000 random 2D points", t, func() {
		r := rand.New(rand.NewSource(7))
		points := make([][]float64, 2000)
		for i := range points {
			points[i] = []float64{r.Float64() * 1000, r.Float64() * 1000}
		}

		layout, store := buildTestTree(points, 32)
		scratch := &queryengine.Scratch[float64]{Off: make([]float64, 2)}

		Convey("When running nearest_one against 50 random queries", func() {
			for q := 0; q < 50; q++ {
				query := []float64{r.Float64() * 1000, r.Float64() * 1000}

				acc := queryengine.NewNearestOne[float64, uint32]()
				queryengine.Descend[float64, uint32](layout, store, metric.SquaredEuclidean[float64]{}, query, acc, scratch)

				wantDist, _ := bruteForceNearest(points, query)
				gotDist, _, found := acc.Result()

				So(found, ShouldBeTrue)
				So(gotDist, ShouldAlmostEqual, wantDist, 1e-9)
			}
		})
	})
}

func TestNearestNAgreesWithBruteForce(t *testing.T) {
	Convey("Given 1000 random 3D points", t, func() {
		r := rand.New(rand.NewSource(11))
		points := make([][]float64, 1000)
		for i := range points {
			points[i] = []float64{r.Float64() * 100, r.Float64() * 100, r.Float64() * 100}
		}

		layout, store := buildTestTree(points, 16)
		scratch := &queryengine.Scratch[float64]{Off: make([]float64, 3)}

		Convey("When running nearest_n(5)", func() {
			query := []float64{50, 50, 50}

			acc := queryengine.NewNearestN[float64, uint32](5)
			queryengine.Descend[float64, uint32](layout, store, metric.SquaredEuclidean[float64]{}, query, acc, scratch)
			got := acc.Result()

			dists := make([]float64, len(points))
			for i, p := range points {
				dists[i] = sqDist(p, query)
			}
			sort.Float64s(dists)

			Convey("Then it returns exactly the 5 smallest brute-force distances, ascending", func() {
				So(got, ShouldHaveLength, 5)
				for i, e := range got {
					So(e.Dist, ShouldAlmostEqual, dists[i], 1e-9)
					if i > 0 {
						So(got[i-1].Dist, ShouldBeLessThanOrEqualTo, e.Dist)
					}
				}
			})
		})
	})
}

func TestWithinAgreesWithBruteForce(t *testing.T) {
	Convey("Given 100 copies of (5,5) plus one outlier at the origin", t, func() {
		points := make([][]float64, 0, 101)
		for i := 0; i < 100; i++ {
			points = append(points, []float64{5, 5})
		}
		points = append(points, []float64{0, 0})

		layout, store := buildTestTree(points, 8)
		scratch := &queryengine.Scratch[float64]{Off: make([]float64, 2)}
		query := []float64{10, 10}

		Convey("When running nearest_one", func() {
			acc := queryengine.NewNearestOne[float64, uint32]()
			queryengine.Descend[float64, uint32](layout, store, metric.SquaredEuclidean[float64]{}, query, acc, scratch)
			dist, _, found := acc.Result()

			Convey("Then it finds one of the (5,5) duplicates at distance 50", func() {
				So(found, ShouldBeTrue)
				So(dist, ShouldAlmostEqual, 50, 1e-9)
			})
		})

		Convey("When running within(r=200)", func() {
			list := queryengine.NewRadiusList[float64, uint32](200)
			queryengine.Descend[float64, uint32](layout, store, metric.SquaredEuclidean[float64]{}, query, list, scratch)

			Convey("Then all 101 points are returned", func() {
				So(list.Result(), ShouldHaveLength, 101)
			})

			Convey("Then Sorted and Result agree as sets", func() {
				So(list.Sorted(), ShouldHaveLength, len(list.Result()))

				seen := map[uint32]int{}
				for _, e := range list.Sorted() {
					seen[e.ID]++
				}
				for _, e := range list.Result() {
					seen[e.ID]--
				}
				for _, c := range seen {
					So(c, ShouldEqual, 0)
				}
			})
		})
	})
}

func TestBestNWithin(t *testing.T) {
	Convey("Given 20 points on a line ranked by their index", t, func() {
		points := make([][]float64, 20)
		for i := range points {
			points[i] = []float64{float64(i), 0}
		}

		layout, store := buildTestTree(points, 4)
		scratch := &queryengine.Scratch[float64]{Off: make([]float64, 2)}
		query := []float64{0, 0}

		Convey("When running best_n_within(r=inf, k=3) ranked by id", func() {
			const inf = 1e308
			acc := queryengine.NewBestNWithin[float64, uint32](inf, 3, func(id uint32, _ float64) float64 {
				return float64(id)
			})
			queryengine.Descend[float64, uint32](layout, store, metric.SquaredEuclidean[float64]{}, query, acc, scratch)
			got := acc.Result()

			Convey("Then it returns the 3 highest-id points, descending by rank", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0].ID, ShouldEqual, uint32(19))
				So(got[1].ID, ShouldEqual, uint32(18))
				So(got[2].ID, ShouldEqual, uint32(17))
			})
		})
	})
}
