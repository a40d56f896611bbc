// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/palette"
	"github.com/spf13/viper"
)

// Init loads the palette list and preselects the palette saved as active.
func (b *statefulBubble) Init() tea.Cmd {
	cmd := b.reloadPalettes()

	active := palette.Key(viper.GetString(key.PaletteActive))
	items := b.palettesC.Items()
	for i, item := range items {
		if item.(*listItem).internal.(*paletteEntry).key == active {
			b.palettesC.Select(i)
			break
		}
	}

	return cmd
}
