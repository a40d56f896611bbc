// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Palette Selection - these keys track which palette the editor opens with.
const (
	PaletteActive = "palette.active"
)

// Preview Rendering - these keys size the gradient strip drawn for a palette.
const (
	PreviewWidth  = "preview.width"
	PreviewHeight = "preview.height"
)

// Pattern Evaluation - these keys govern the Lua pattern engine.
const (
	PatternDefault = "pattern.default"
	PatternLibs    = "pattern.libs"
	PatternSpeed   = "pattern.speed"
)

// Search - these keys control remembered palette searches.
const (
	SearchSuggestions = "search.suggestions"
)

// Colour Editor - these keys tune the interactive stop editor.
const (
	EditorStep = "editor.step"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowKeys    = "tui.show_keys"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
	LogsKeep  = "logs.keep"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
