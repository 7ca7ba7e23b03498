package tuple_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/flier/kdtree/pkg/tuple"
)

func TestTuple2(t *testing.T) {
	Convey("Given a Tuple2 of (1, \"a\")", t, func() {
		tu := New2(1, "a")

		Convey("Then Unpack returns both values", func() {
			v0, v1 := tu.Unpack()
			So(v0, ShouldEqual, 1)
			So(v1, ShouldEqual, "a")
		})

		Convey("Then String renders both values", func() {
			So(tu.String(), ShouldEqual, `(1, a)`)
		})
	})
}
