package config

import (
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/key"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
)

// Default is the registry of every setting ledpal reads, keyed by dotted key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to LEDPAL_* environment variables.
var EnvExposed []string

func register(k string, v any, desc string, options ...string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc, Options: options}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	// palettes and previews
	register(key.PaletteActive, constant.DefaultPaletteKey, "Key of the palette the editor opens with")
	register(key.PreviewWidth, constant.PreviewWidth, "Number of gradient samples in a palette preview strip")
	register(key.PreviewHeight, constant.PreviewHeight, "Height of the palette preview strip in rows")
	register(key.EditorStep, 0.01, "Amount a single key press moves hue, saturation or value in the editor")
	register(key.SearchSuggestions, true, "Suggest previously used palette searches")

	// patterns
	register(key.PatternDefault, 0, "Pattern used by \"pattern show\" when none is given.\nType \"ledpal pattern list\" to show available patterns")
	register(key.PatternLibs, true, "Preload the extended Lua standard library into pattern scripts")
	register(key.PatternSpeed, 0.2, "Animation cycles per second of the pattern preview")

	// interface
	register(key.IconsVariant, "plain", "Icons drawn by the CLI and the TUI. nerd needs a nerd font", icon.AvailableVariants()...)
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIShowKeys, true, "Show palette keys under palette names")
	register(key.CliColored, true, "Enable colored CLI output")

	// diagnostics
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Least severe level written, from panic to trace", lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string {
		return l.String()
	})...)
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsKeep, 14, "Days of log files to keep, 0 keeps them all")
}
