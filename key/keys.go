// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Theme - these keys govern the light/dark presentation mode.
const (
	ThemeDefault        = "theme.default"
	ThemeFollowTerminal = "theme.follow_terminal"
)

// Navigation - these keys configure the scroll-synchronized section tracking.
const (
	NavVisibilityThreshold = "nav.visibility_threshold"
	NavScrollStiffness     = "nav.scroll_stiffness"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUISectionGap     = "tui.section_gap"
	TUIShowScrollHint = "tui.show_scroll_hint"
	TUIGotoPrompt     = "tui.goto_prompt"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
