// Package theme manages the persisted light/dark presentation mode and the palettes derived from it.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/metafates/gache"
	"github.com/p09s/folio/filesystem"
	"github.com/p09s/folio/key"
	"github.com/p09s/folio/log"
	"github.com/p09s/folio/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Mode is the light/dark presentation flag.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Opposite returns the other member of the mode domain.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode validates a raw string against the mode domain.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown theme mode: %q", s)
	}
}

// Modes returns all valid mode identifiers.
func Modes() []string {
	return []string{string(Light), string(Dark)}
}

// Manager owns the theme state for one application instance. It is
// created by the top-level composition and handed to consumers by
// reference; all mutation happens on the UI dispatch loop.
type Manager struct {
	store  *gache.Cache[string]
	detect func() mo.Option[Mode]
	mode   Mode
}

// NewManager returns a manager backed by the persisted preference file
// and terminal background detection.
func NewManager() *Manager {
	return newManagerWith(
		gache.New[string](&gache.Options{
			Path:       where.Theme(),
			FileSystem: &filesystem.GacheFs{},
		}),
		detectTerminal,
	)
}

func newManagerWith(store *gache.Cache[string], detect func() mo.Option[Mode]) *Manager {
	return &Manager{store: store, detect: detect}
}

// Load resolves the initial mode exactly once per run, before the
// first themed paint: persisted value first, ambient terminal
// background second, configured default last. It never fails.
func (m *Manager) Load() Mode {
	if persisted, expired, err := m.store.Get(); err == nil && !expired && persisted != "" {
		if mode, parseErr := ParseMode(persisted); parseErr == nil {
			m.mode = mode
			return m.mode
		}
		log.Warnf("theme: discarding corrupt persisted mode %q", persisted)
	}

	if ambient, ok := m.detect().Get(); ok {
		m.mode = ambient
		return m.mode
	}

	if mode, err := ParseMode(viper.GetString(key.ThemeDefault)); err == nil {
		m.mode = mode
	} else {
		m.mode = Light
	}
	return m.mode
}

// Mode returns the current mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Set switches to the given mode and persists it best-effort: a
// storage failure is logged and absorbed, leaving the in-memory value
// authoritative for the rest of the session.
func (m *Manager) Set(mode Mode) {
	m.mode = mode
	if err := m.store.Set(string(mode)); err != nil {
		log.Warnf("theme: persisting %q failed: %v", mode, err)
	}
}

// Toggle flips the mode to the other member of the domain and persists the result.
func (m *Manager) Toggle() Mode {
	m.Set(m.mode.Opposite())
	return m.mode
}

// Palette returns the palette matching the current mode.
func (m *Manager) Palette() Palette {
	if m.mode == Dark {
		return DarkPalette()
	}
	return LightPalette()
}

// detectTerminal maps the terminal background onto a mode, honoring
// the follow_terminal switch.
func detectTerminal() mo.Option[Mode] {
	if !viper.GetBool(key.ThemeFollowTerminal) {
		return mo.None[Mode]()
	}
	if lipgloss.HasDarkBackground() {
		return mo.Some(Dark)
	}
	return mo.Some(Light)
}
