package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifier(t *testing.T) {
	Convey("Given an idle notifier", t, func() {
		var n Notifier
		So(n.Active(), ShouldBeFalse)

		Convey("Notify should show the message until its window expires", func() {
			_ = n.Notify("copied!")
			So(n.Active(), ShouldBeTrue)
			So(n.Message(), ShouldEqual, "copied!")

			n.Update(notifyExpiredMsg{generation: 1})
			So(n.Active(), ShouldBeFalse)
		})

		Convey("A re-trigger mid-window should restart the window", func() {
			_ = n.Notify("copied!")
			_ = n.Notify("copied!")

			// The first window's expiry arrives late and must not
			// clear the second window.
			n.Update(notifyExpiredMsg{generation: 1})
			So(n.Active(), ShouldBeTrue)

			n.Update(notifyExpiredMsg{generation: 2})
			So(n.Active(), ShouldBeFalse)
		})

		Convey("Unrelated messages should be ignored", func() {
			_ = n.Notify("copied!")
			n.Update(struct{}{})
			So(n.Active(), ShouldBeTrue)
		})
	})
}
