package where

import (
	"os"
	"strings"
	"testing"

	"github.com/p09s/folio/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestWhere(t *testing.T) {
	Convey("Given a custom config path override", t, func() {
		So(os.Setenv(EnvConfigPath, "/custom/folio"), ShouldBeNil)
		defer func() {
			So(os.Unsetenv(EnvConfigPath), ShouldBeNil)
		}()

		Convey("Config should resolve to the override", func() {
			So(Config(), ShouldEqual, "/custom/folio")
		})

		Convey("Theme should live inside the config dir", func() {
			So(Theme(), ShouldEqual, "/custom/folio/theme.json")
		})

		Convey("Logs should live inside the config dir", func() {
			So(strings.HasPrefix(Logs(), "/custom/folio"), ShouldBeTrue)
		})
	})
}
