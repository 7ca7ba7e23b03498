package memalign_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/kdtree/internal/memalign"
)

func TestSlice(t *testing.T) {
	Convey("Given a request for an aligned float64 slice", t, func() {
		Convey("When the slice is non-empty", func() {
			s := memalign.Slice[float64](37, memalign.Cacheline)

			Convey("Then it has the requested length", func() {
				So(len(s), ShouldEqual, 37)
			})

			Convey("Then its backing storage starts on a cacheline boundary", func() {
				So(memalign.IsAligned(s, memalign.Cacheline), ShouldBeTrue)
			})
		})

		Convey("When n is zero", func() {
			s := memalign.Slice[float64](0, memalign.Cacheline)

			Convey("Then it returns an empty slice", func() {
				So(len(s), ShouldEqual, 0)
			})
		})

		Convey("When a wide-cacheline alignment is requested", func() {
			s := memalign.Slice[float32](129, memalign.WideCacheline)

			Convey("Then it is aligned to 128 bytes", func() {
				So(memalign.IsAligned(s, memalign.WideCacheline), ShouldBeTrue)
			})
		})
	})
}
