package section

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given the default registry", t, func() {
		r := Default()

		Convey("Sections should keep their declared order", func() {
			So(r.IDs(), ShouldResemble, []string{"hero", "work", "journey", "about", "community", "contact"})
		})

		Convey("First should be hero", func() {
			So(r.First().ID, ShouldEqual, "hero")
		})

		Convey("Get should resolve a known id", func() {
			s, ok := r.Get("journey").Get()
			So(ok, ShouldBeTrue)
			So(s.Label, ShouldEqual, "Journey")
		})

		Convey("Get should report unknown ids", func() {
			So(r.Get("nope").IsAbsent(), ShouldBeTrue)
			So(r.Contains("nope"), ShouldBeFalse)
			So(r.IndexOf("nope"), ShouldEqual, -1)
		})
	})

	Convey("Duplicate ids should be rejected at construction", t, func() {
		So(func() {
			NewRegistry(Section{ID: "a"}, Section{ID: "a"})
		}, ShouldPanic)
	})
}
