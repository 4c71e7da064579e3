package nav

import (
	"testing"

	"github.com/p09s/folio/section"
	. "github.com/smartystreets/goconvey/convey"
)

func TestState(t *testing.T) {
	Convey("Given a state over the default registry", t, func() {
		registry := section.Default()
		state := NewState(registry)

		Convey("Initial value should be the first section", func() {
			So(state.Get(), ShouldEqual, "hero")
		})

		Convey("Set should overwrite unconditionally", func() {
			So(state.Set("contact"), ShouldBeNil)
			So(state.Get(), ShouldEqual, "contact")

			So(state.Set("work"), ShouldBeNil)
			So(state.Get(), ShouldEqual, "work")
		})

		Convey("Set should be idempotent", func() {
			So(state.Set("about"), ShouldBeNil)
			So(state.Set("about"), ShouldBeNil)
			So(state.Get(), ShouldEqual, "about")
		})

		Convey("Unknown ids should be rejected and the value retained", func() {
			So(state.Set("journey"), ShouldBeNil)
			So(state.Set("garbage"), ShouldNotBeNil)
			So(state.Get(), ShouldEqual, "journey")
		})

		Convey("The value should always be a registry member", func() {
			ids := []string{"work", "bogus", "contact", "", "hero", "x"}
			for _, id := range ids {
				_ = state.Set(id)
				So(registry.Contains(state.Get()), ShouldBeTrue)
			}
		})
	})
}
