// Package icon renders the symbols used by the CLI and the interfaces.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain text, kaomoji,
// or Unicode squares depending on icons.variant.
package icon

import (
	"github.com/ledpal/ledpal/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the values icons.variant accepts.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// glyphs maps a variant to the text drawn for it.
type glyphs map[string]string

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Palette
	Lock
	Stop
	Pattern
	Question
)

var icons = map[Icon]glyphs{
	Success: {
		emoji:   "✅",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "\ue009",
		plain:   "✗",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf250",
		plain:   "…",
		kaomoji: "(￣ω￣;)",
		squares: "🟦",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "\ue22b",
		plain:   "◆",
		kaomoji: "ᕕ( ᐛ )ᕗ",
		squares: "🟪",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "\uf023",
		plain:   "[default]",
		kaomoji: "(ꐦ°᷄д°᷅)",
		squares: "⬛",
	},
	Stop: {
		emoji:   "🔸",
		nerd:    "\uf111",
		plain:   "●",
		kaomoji: "(・_・)",
		squares: "🟧",
	},
	Pattern: {
		emoji:   "💡",
		nerd:    "\uf0eb",
		plain:   "~",
		kaomoji: "☆彡",
		squares: "🟨",
	},
	Question: {
		emoji:   "❓",
		nerd:    "\uf128",
		plain:   "?",
		kaomoji: "(・・ ) ?",
		squares: "⬜",
	},
}

// Get renders i in the configured variant. Unknown variants use the plain
// glyph and unknown icons render as nothing.
func Get(i Icon) string {
	g, ok := icons[i]
	if !ok {
		return ""
	}
	if s, ok := g[viper.GetString(key.IconsVariant)]; ok {
		return s
	}
	return g[plain]
}
