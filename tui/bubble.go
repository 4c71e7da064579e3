// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/harmonica"
	"github.com/p09s/folio/content"
	"github.com/p09s/folio/internal/ui"
	"github.com/p09s/folio/key"
	"github.com/p09s/folio/nav"
	"github.com/p09s/folio/section"
	"github.com/p09s/folio/theme"
	"github.com/p09s/folio/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const scrollFPS = 60

// statefulBubble encapsulates the comprehensive application state, including component models and navigation tracking.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	registry section.Registry
	active   *nav.State
	observer *nav.Observer
	themes   *theme.Manager
	payload  content.Payload

	// components
	viewportC viewport.Model
	gotoC     textinput.Model
	helpC     help.Model
	notifier  *ui.Notifier

	// Section navigation history for the back key.
	sectionHistory util.Stack[string]

	// Spring-driven scroll animation toward targetOffset.
	spring       harmonica.Spring
	scrollPos    float64
	scrollVel    float64
	targetOffset int
	animating    bool

	// Document geometry rebuilt on resize and theme change.
	extents map[string]extent

	now         time.Time
	showHint    bool
	hasScrolled bool
	socialIndex int

	// Pending start jump, consumed once the document has been laid out.
	startSection mo.Option[string]

	width, height int

	options *Options
}

// extent records the rendered line range of one section within the document.
type extent struct {
	top    int
	height int
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	registry := section.Default()

	threshold := float64(viper.GetInt(key.NavVisibilityThreshold)) / 100
	stiffness := viper.GetFloat64(key.NavScrollStiffness)
	if stiffness <= 0 {
		stiffness = 6
	}

	bubble := &statefulBubble{
		state:    browseState,
		keymap:   newStatefulKeymap(),
		registry: registry,
		active:   nav.NewState(registry),
		observer: nav.NewObserver(threshold),
		themes:   theme.NewManager(),
		payload:  content.Default(),

		notifier: &ui.Notifier{},
		spring:   harmonica.NewSpring(harmonica.FPS(scrollFPS), stiffness, 0.8),
		extents:  make(map[string]extent),

		now:      time.Now(),
		showHint: viper.GetBool(key.TUIShowScrollHint),

		options: options,
	}

	bubble.viewportC = viewport.New(0, 0)

	bubble.gotoC = textinput.New()
	bubble.gotoC.Placeholder = "section name"
	bubble.gotoC.CharLimit = 24
	bubble.gotoC.Prompt = viper.GetString(key.TUIGotoPrompt)

	bubble.helpC = help.New()

	// Dock highlight follows the scroll position through the observer.
	for _, s := range registry.All() {
		id := s.ID
		bubble.observer.Subscribe(id, func() {
			_ = bubble.active.Set(id)
		})
	}

	if mode, ok := options.Theme.Get(); ok {
		bubble.themes.Set(mode)
	} else {
		bubble.themes.Load()
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}

// setState performs a synchronous transition of both the interaction mode and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes and rebuilds the document layout.
func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height

	x, y := paddingStyle.GetFrameSize()
	b.viewportC.Width = width - x
	b.viewportC.Height = height - y - dockHeight(b)

	b.gotoC.Width = b.viewportC.Width
	b.helpC.Width = b.viewportC.Width

	b.relayout()
}

// gotoSection optimistically highlights the target in the dock and
// starts the smooth scroll toward its document extent. The highlight is
// not deferred until the scroll settles.
func (b *statefulBubble) gotoSection(id string) {
	ext, ok := b.extents[id]
	if !ok {
		return
	}

	if current := b.active.Get(); current != id {
		b.sectionHistory.Push(current)
	}
	_ = b.active.Set(id)

	b.targetOffset = util.Min(ext.top, b.maxOffset())
	b.scrollPos = float64(b.viewportC.YOffset)
	b.animating = true
	b.hasScrolled = true
}

// applyStartSection consumes the pending start jump. It is a no-op
// until the target section has a laid-out extent, so a missing
// pre-loop terminal size only delays the jump instead of dropping it.
func (b *statefulBubble) applyStartSection() bool {
	id, ok := b.startSection.Get()
	if !ok {
		return false
	}

	if _, laid := b.extents[id]; !laid {
		return false
	}

	b.startSection = mo.None[string]()
	b.gotoSection(id)
	return true
}

// previousSection restores the last section recorded before a jump.
func (b *statefulBubble) previousSection() {
	if b.sectionHistory.Len() > 0 {
		b.gotoSection(b.sectionHistory.Pop())
		// gotoSection pushed the current section back on; drop it.
		if b.sectionHistory.Len() > 0 {
			b.sectionHistory.Pop()
		}
	}
}

// neighborSection returns the section delta steps away from the active
// one, wrapping around the registry.
func (b *statefulBubble) neighborSection(delta int) string {
	ids := b.registry.IDs()
	i := b.registry.IndexOf(b.active.Get())
	return ids[((i+delta)%len(ids)+len(ids))%len(ids)]
}

// syncScroll lets manual scrolling take over from a running animation.
func (b *statefulBubble) syncScroll() {
	b.scrollPos = float64(b.viewportC.YOffset)
	b.scrollVel = 0
	b.targetOffset = b.viewportC.YOffset
	b.animating = false
	b.hasScrolled = true
	b.report()
}

// stepScroll advances the spring animation by one frame.
func (b *statefulBubble) stepScroll() {
	if !b.animating {
		return
	}

	b.scrollPos, b.scrollVel = b.spring.Update(b.scrollPos, b.scrollVel, float64(b.targetOffset))
	b.viewportC.SetYOffset(int(math.Round(b.scrollPos)))

	if math.Abs(b.scrollPos-float64(b.targetOffset)) < 0.5 && math.Abs(b.scrollVel) < 0.5 {
		b.viewportC.SetYOffset(b.targetOffset)
		b.animating = false
	}

	b.report()
}

// report feeds the current viewport window to the visibility observer.
func (b *statefulBubble) report() {
	b.observer.Report(b.viewportC.YOffset, b.viewportC.Height)
}

func (b *statefulBubble) maxOffset() int {
	return util.Max(0, b.viewportC.TotalLineCount()-b.viewportC.Height)
}
