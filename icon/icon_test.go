package icon

import (
	"testing"

	"github.com/p09s/folio/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given the plain variant", t, func() {
		viper.Set(key.IconsVariant, "plain")

		Convey("Every registered icon should render non-empty", func() {
			for i := range icons {
				So(Get(i), ShouldNotBeEmpty)
			}
		})
	})

	Convey("An unknown variant should fall back to plain", t, func() {
		viper.Set(key.IconsVariant, "bogus")
		So(Get(Sun), ShouldEqual, "(*)")
	})
}
