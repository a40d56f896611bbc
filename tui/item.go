// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/pattern"
	"github.com/ledpal/ledpal/preview"
	"github.com/ledpal/ledpal/style"
	"github.com/spf13/viper"
)

const itemStripWidth = 32

// paletteEntry is a palette together with the key it is stored under.
type paletteEntry struct {
	key     palette.Key
	palette palette.Palette
}

// listItem implements the list.Item interface, wrapping domain models for terminal display.
type listItem struct {
	internal interface{}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *paletteEntry:
		title = e.palette.Name
		if e.palette.Default {
			title = fmt.Sprintf("%s %s", title, style.Faint(icon.Get(icon.Lock)))
		}
	case *pattern.Pattern:
		title = e.Name
		if e.IsCustom() {
			title = fmt.Sprintf("%s %s", title, style.Faint(icon.Get(icon.Pattern)))
		}
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	return
}

// Description renders a small gradient strip for palettes.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *paletteEntry:
		if e.palette.Validate() != nil {
			return style.Faint(fmt.Sprintf("%d colors", len(e.palette.Colors)))
		}
		terminal := &preview.Terminal{CellWidth: 1}
		description = terminal.String(preview.Strip(e.palette.Colors, itemStripWidth))
		if viper.GetBool(key.TUIShowKeys) {
			description = fmt.Sprintf("%s %s", description, style.Faint(e.key.String()))
		}
	case *pattern.Pattern:
		description = fmt.Sprintf("#%d", e.ID)
	}

	return
}

// FilterValue returns the searchable text of the list item.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *paletteEntry:
		return e.palette.Name
	case *pattern.Pattern:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}
