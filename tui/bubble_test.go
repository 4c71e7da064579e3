package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/p09s/folio/filesystem"
	"github.com/p09s/folio/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.ThemeDefault, "light")
	viper.Set(key.ThemeFollowTerminal, false)
	viper.Set(key.NavVisibilityThreshold, 50)
	viper.Set(key.NavScrollStiffness, 6)
	viper.Set(key.TUISectionGap, 1)
	viper.Set(key.TUIShowScrollHint, true)
	viper.Set(key.TUIGotoPrompt, "> ")
	viper.Set(key.IconsVariant, "plain")
}

func testBubble() *statefulBubble {
	b := newBubble(&Options{})
	b.resize(80, 24)
	return b
}

func settle(b *statefulBubble) {
	for i := 0; i < 600 && b.animating; i++ {
		b.stepScroll()
	}
}

func TestOptimisticNavigation(t *testing.T) {
	Convey("Given a freshly laid out interface", t, func() {
		b := testBubble()
		So(b.active.Get(), ShouldEqual, "hero")

		Convey("A jump should highlight the target before the scroll settles", func() {
			b.gotoSection("contact")

			So(b.active.Get(), ShouldEqual, "contact")
			So(b.animating, ShouldBeTrue)
			So(b.viewportC.YOffset, ShouldNotEqual, b.targetOffset)

			Convey("And the highlight should survive the scroll settling", func() {
				settle(b)
				So(b.animating, ShouldBeFalse)
				So(b.viewportC.YOffset, ShouldEqual, b.targetOffset)
				So(b.active.Get(), ShouldEqual, "contact")
			})
		})

		Convey("Tab should advance to the adjacent section immediately", func() {
			_, _ = b.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(b.active.Get(), ShouldEqual, "work")

			_, _ = b.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
			So(b.active.Get(), ShouldEqual, "hero")
		})

		Convey("Number keys should jump straight to a section", func() {
			_, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
			So(b.active.Get(), ShouldEqual, "about")
		})

		Convey("Escape should return to the previously active section", func() {
			b.gotoSection("community")
			settle(b)
			b.previousSection()
			So(b.active.Get(), ShouldEqual, "hero")
		})
	})
}

func TestThemeToggleKey(t *testing.T) {
	Convey("Given the interface in its initial mode", t, func() {
		b := testBubble()
		before := b.themes.Mode()

		Convey("The theme key should flip the mode and announce it", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
			So(b.themes.Mode(), ShouldEqual, before.Opposite())
			So(cmd, ShouldNotBeNil)
			So(b.notifier.Active(), ShouldBeTrue)
		})
	})
}

func TestGotoPrompt(t *testing.T) {
	Convey("Given the goto prompt", t, func() {
		b := testBubble()

		Convey("Fuzzy input should resolve to a registered section", func() {
			b.gotoC.SetValue("comm")
			id, ok := b.gotoSuggestion()
			So(ok, ShouldBeTrue)
			So(id, ShouldEqual, "community")
		})

		Convey("Unmatched input should resolve to nothing", func() {
			b.gotoC.SetValue("zzz")
			_, ok := b.gotoSuggestion()
			So(ok, ShouldBeFalse)
		})

		Convey("The prompt key should switch modes and back", func() {
			_, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
			So(b.state, ShouldEqual, gotoState)

			_, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state, ShouldEqual, browseState)
		})
	})
}

func TestScrollDrivesHighlight(t *testing.T) {
	Convey("Given the interface scrolled by hand", t, func() {
		b := testBubble()

		Convey("Dragging the viewport over a section should highlight it", func() {
			ext := b.extents["journey"]
			b.viewportC.SetYOffset(ext.top)
			b.syncScroll()
			So(b.active.Get(), ShouldEqual, "journey")

			Convey("A confirming crossing after a jump should change nothing", func() {
				b.gotoSection("journey")
				settle(b)
				So(b.active.Get(), ShouldEqual, "journey")
			})
		})
	})
}

func TestCopyConfirmation(t *testing.T) {
	Convey("Copying the contact address should always confirm", t, func() {
		// The clipboard may be unavailable in the test environment;
		// the confirmation must appear regardless.
		b := testBubble()
		cmd := b.copyEmail()

		So(cmd, ShouldNotBeNil)
		So(b.notifier.Active(), ShouldBeTrue)
		So(b.notifier.Message(), ShouldContainSubstring, b.payload.Profile.Email)
	})
}

func TestStartSection(t *testing.T) {
	Convey("Given a laid-out interface with a pending start section", t, func() {
		b := testBubble()
		b.startSection = mo.Some("contact")

		Convey("Init should start the jump and schedule its first frame", func() {
			cmd := b.Init()

			So(b.active.Get(), ShouldEqual, "contact")
			So(b.animating, ShouldBeTrue)
			So(b.targetOffset, ShouldBeGreaterThan, 0)
			So(cmd, ShouldNotBeNil)

			Convey("And frame messages should carry the viewport to the target", func() {
				for i := 0; i < 600 && b.animating; i++ {
					_, _ = b.Update(frameMsg{})
				}
				So(b.animating, ShouldBeFalse)
				So(b.viewportC.YOffset, ShouldEqual, b.targetOffset)
				So(b.active.Get(), ShouldEqual, "contact")
			})
		})
	})

	Convey("Given an interface that could not size itself before the loop", t, func() {
		b := newBubble(&Options{})
		b.extents = make(map[string]extent)
		b.startSection = mo.Some("work")

		Convey("Init should keep the jump pending rather than drop it", func() {
			_ = b.Init()
			So(b.startSection.IsPresent(), ShouldBeTrue)

			Convey("And the first window size message should apply it", func() {
				_, cmd := b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

				So(b.active.Get(), ShouldEqual, "work")
				So(b.animating, ShouldBeTrue)
				So(b.startSection.IsAbsent(), ShouldBeTrue)
				So(cmd, ShouldNotBeNil)
			})
		})
	})
}

func TestManualScrollTakesOver(t *testing.T) {
	Convey("Given an in-flight jump animation", t, func() {
		b := testBubble()
		b.gotoSection("contact")
		So(b.animating, ShouldBeTrue)

		Convey("A paging key handled by the viewport should cancel it", func() {
			_, _ = b.Update(tea.KeyMsg{Type: tea.KeyPgDown})

			So(b.animating, ShouldBeFalse)
			So(b.hasScrolled, ShouldBeTrue)
			So(b.targetOffset, ShouldEqual, b.viewportC.YOffset)

			Convey("And a stale frame message should not move the viewport", func() {
				offset := b.viewportC.YOffset
				_, _ = b.Update(frameMsg{})
				So(b.viewportC.YOffset, ShouldEqual, offset)
			})
		})

		Convey("A mouse wheel event should cancel it too", func() {
			_, _ = b.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

			So(b.animating, ShouldBeFalse)
			So(b.hasScrolled, ShouldBeTrue)
		})
	})
}
