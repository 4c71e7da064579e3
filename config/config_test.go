package config

import (
	"testing"

	"github.com/p09s/folio/filesystem"
	"github.com/p09s/folio/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Theme default should be light", func() {
			_ = Setup()
			So(viper.GetString(key.ThemeDefault), ShouldEqual, "light")
		})

		Convey("Visibility threshold default should match the accepted range", func() {
			_ = Setup()
			threshold := viper.GetInt(key.NavVisibilityThreshold)
			So(threshold, ShouldBeGreaterThanOrEqualTo, 30)
			So(threshold, ShouldBeLessThanOrEqualTo, 50)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("theme.follow.terminal"), ShouldEqual, "theme_follow_terminal")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field env names should carry the app prefix", t, func() {
		f := Default[key.ThemeDefault]
		So(f.Env(), ShouldEqual, "FOLIO_THEME_DEFAULT")
	})
}
