package theme

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/metafates/gache"
	"github.com/p09s/folio/filesystem"
	"github.com/p09s/folio/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.ThemeDefault, string(Light))
	viper.Set(key.ThemeFollowTerminal, true)
}

func memStore(path string) *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       path,
		FileSystem: &filesystem.GacheFs{},
	})
}

func none() mo.Option[Mode] { return mo.None[Mode]() }

func some(m Mode) func() mo.Option[Mode] {
	return func() mo.Option[Mode] { return mo.Some(m) }
}

func TestParseMode(t *testing.T) {
	Convey("Valid modes should parse, anything else should not", t, func() {
		mode, err := ParseMode("dark")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, Dark)

		_, err = ParseMode("solarized")
		So(err, ShouldNotBeNil)

		So(Light.Opposite(), ShouldEqual, Dark)
		So(Dark.Opposite(), ShouldEqual, Light)
	})
}

func TestLoadResolution(t *testing.T) {
	Convey("Given no persisted preference", t, func() {
		Convey("Load should fall back to the configured default", func() {
			m := newManagerWith(memStore("resolve-default.json"), none)
			So(m.Load(), ShouldEqual, Light)
		})

		Convey("An ambient dark signal should win over the default", func() {
			m := newManagerWith(memStore("resolve-ambient.json"), some(Dark))
			So(m.Load(), ShouldEqual, Dark)
		})
	})

	Convey("Given a persisted preference", t, func() {
		store := memStore("resolve-persisted.json")
		seeded := newManagerWith(store, none)
		seeded.Set(Dark)

		Convey("Load should prefer it over the ambient signal", func() {
			m := newManagerWith(store, some(Light))
			So(m.Load(), ShouldEqual, Dark)
		})
	})

	Convey("A corrupt persisted value should be discarded", t, func() {
		store := memStore("resolve-corrupt.json")
		So(store.Set("mocha"), ShouldBeNil)

		m := newManagerWith(store, some(Dark))
		So(m.Load(), ShouldEqual, Dark)
	})
}

func TestToggleRoundTrip(t *testing.T) {
	Convey("Given a loaded manager", t, func() {
		store := memStore("toggle.json")
		m := newManagerWith(store, none)
		So(m.Load(), ShouldEqual, Light)

		Convey("Toggle should flip and persist in both directions", func() {
			So(m.Toggle(), ShouldEqual, Dark)

			restarted := newManagerWith(store, none)
			So(restarted.Load(), ShouldEqual, Dark)

			So(restarted.Toggle(), ShouldEqual, Light)

			again := newManagerWith(store, none)
			So(again.Load(), ShouldEqual, Light)
		})

		Convey("Palette should follow the mode", func() {
			So(m.Palette(), ShouldResemble, LightPalette())
			m.Toggle()
			So(m.Palette(), ShouldResemble, DarkPalette())
		})
	})
}

// failFs refuses every operation, standing in for a broken preference file.
type failFs struct{}

func (failFs) OpenFile(string, int, os.FileMode) (io.ReadWriteCloser, error) {
	return nil, errors.New("storage unavailable")
}

func (failFs) MkdirAll(string, os.FileMode) error {
	return errors.New("storage unavailable")
}

func TestToggleSurvivesStorageFailure(t *testing.T) {
	Convey("Given a manager whose store cannot be written", t, func() {
		store := gache.New[string](&gache.Options{
			Path:       "broken.json",
			FileSystem: failFs{},
		})
		m := newManagerWith(store, none)
		m.Load()

		Convey("Toggle should still flip the in-memory mode", func() {
			So(m.Toggle(), ShouldEqual, Dark)
			So(m.Mode(), ShouldEqual, Dark)

			So(m.Toggle(), ShouldEqual, Light)
			So(m.Mode(), ShouldEqual, Light)
		})
	})
}
