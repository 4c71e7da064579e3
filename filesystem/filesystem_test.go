package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitch(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		defer SetOsFs()

		Convey("Writes should not touch the OS filesystem", func() {
			err := API().WriteFile("/folio-test-file", []byte("ok"), 0644)
			So(err, ShouldBeNil)

			data, err := API().ReadFile("/folio-test-file")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "ok")
		})

		Convey("Switching backends should discard in-memory state", func() {
			So(API().WriteFile("/volatile", []byte("x"), 0644), ShouldBeNil)
			SetMemMapFs()
			exists, err := API().Exists("/volatile")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}
