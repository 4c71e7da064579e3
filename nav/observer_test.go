package nav

import (
	"testing"

	"github.com/p09s/folio/section"
	. "github.com/smartystreets/goconvey/convey"
)

func TestObserverThreshold(t *testing.T) {
	Convey("Threshold should clamp into the accepted range", t, func() {
		So(NewObserver(0.9).Threshold(), ShouldEqual, MaxThreshold)
		So(NewObserver(0.1).Threshold(), ShouldEqual, MinThreshold)
		So(NewObserver(0.4).Threshold(), ShouldEqual, 0.4)
	})
}

func TestObserverCrossings(t *testing.T) {
	Convey("Given an observer tracking two sections", t, func() {
		o := NewObserver(0.5)
		o.Track("hero", 0, 40)
		o.Track("work", 40, 40)

		var fired []string
		o.Subscribe("hero", func() { fired = append(fired, "hero") })
		o.Subscribe("work", func() { fired = append(fired, "work") })

		Convey("The section filling the viewport should cross upward once", func() {
			o.Report(0, 30)
			So(fired, ShouldResemble, []string{"hero"})

			Convey("Staying above the threshold should not re-fire", func() {
				o.Report(2, 30)
				So(fired, ShouldResemble, []string{"hero"})
			})
		})

		Convey("Scrolling down should fire the next section when it crosses", func() {
			o.Report(0, 30)
			o.Report(35, 30)
			So(fired, ShouldResemble, []string{"hero", "work"})

			Convey("Scrolling back up should fire hero again", func() {
				o.Report(0, 30)
				So(fired, ShouldResemble, []string{"hero", "work", "hero"})
			})
		})

		Convey("Two simultaneous crossings should both deliver, document order last-wins", func() {
			// Viewport straddles both sections with enough of each visible.
			o.Track("hero", 0, 20)
			o.Track("work", 20, 20)
			o.Report(5, 30)
			So(fired, ShouldResemble, []string{"hero", "work"})
		})

		Convey("Unsubscribe should silence a section", func() {
			o.Unsubscribe("hero")
			o.Report(0, 30)
			So(fired, ShouldBeEmpty)
		})

		Convey("Close should release all subscriptions", func() {
			o.Close()
			o.Report(0, 30)
			So(fired, ShouldBeEmpty)

			// Late subscriptions after teardown must not leak.
			o.Subscribe("hero", func() { fired = append(fired, "late") })
			o.Report(0, 30)
			So(fired, ShouldBeEmpty)
		})
	})
}

func TestObserverDrivesState(t *testing.T) {
	Convey("Given the observer wired to active-section state", t, func() {
		registry := section.Default()
		state := NewState(registry)
		o := NewObserver(0.5)

		top := 0
		for _, s := range registry.All() {
			o.Track(s.ID, top, 30)
			top += 30
		}
		for _, s := range registry.All() {
			id := s.ID
			o.Subscribe(id, func() { _ = state.Set(id) })
		}

		Convey("A scroll sweep should leave the last crossed section active", func() {
			for viewTop := 0; viewTop <= 150; viewTop += 10 {
				o.Report(viewTop, 30)
				So(registry.Contains(state.Get()), ShouldBeTrue)
			}
			So(state.Get(), ShouldEqual, "contact")
		})

		Convey("A crossing that confirms an optimistic set should be a no-op", func() {
			So(state.Set("contact"), ShouldBeNil)
			o.Report(150, 30)
			So(state.Get(), ShouldEqual, "contact")
		})
	})
}
