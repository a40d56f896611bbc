// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/log"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/pattern"
	"github.com/ledpal/ledpal/preview"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// rebindMsg runs the session rebind once the frame of the current update has been drawn.
type rebindMsg struct{}

// tickMsg advances the pattern preview animation.
type tickMsg time.Time

const (
	tickInterval        = 50 * time.Millisecond
	patternPreviewLines = 4
	channelLabelWidth   = 16
)

func rebind() tea.Msg {
	return rebindMsg{}
}

func notify(text string) tea.Cmd {
	return func() tea.Msg {
		return text
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reloadPalettes refreshes the palette list from the repository, keeping the cursor.
func (b *statefulBubble) reloadPalettes() tea.Cmd {
	palettes, err := b.repo.List()
	if err != nil {
		b.raiseError(err)
		return nil
	}

	items := lo.Map(palettes.Keys(), func(k palette.Key, _ int) list.Item {
		p, _ := palettes.Get(k)
		return &listItem{internal: &paletteEntry{key: k, palette: p}}
	})

	return b.palettesC.SetItems(items)
}

func (b *statefulBubble) reloadPatterns() tea.Cmd {
	items := lo.Map(pattern.All(), func(p *pattern.Pattern, _ int) list.Item {
		return &listItem{internal: p}
	})
	return b.patternsC.SetItems(items)
}

func (b *statefulBubble) selectedEntry() (*paletteEntry, bool) {
	item, ok := b.palettesC.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	entry, ok := item.internal.(*paletteEntry)
	return entry, ok
}

// openPalette makes key the session palette and enters the editor.
func (b *statefulBubble) openPalette(k palette.Key) tea.Cmd {
	if err := b.session.Select(k); err != nil {
		b.raiseError(err)
		return nil
	}

	b.selectedStop = 0
	b.channel = 0
	b.newState(editorState)
	return rebind
}

func (b *statefulBubble) duplicatePalette() tea.Cmd {
	k, err := b.session.Duplicate()
	if err != nil {
		return notify(err.Error())
	}

	p, _ := b.repo.Get(k)
	b.selectedStop = 0
	return tea.Batch(rebind, b.reloadPalettes(), notify(fmt.Sprintf("Created %q", p.Name)))
}

// removePalette deletes the session palette after confirmation and returns to the list.
func (b *statefulBubble) removePalette() tea.Cmd {
	p, err := b.session.Palette()
	if err != nil {
		b.raiseError(err)
		return nil
	}

	removed := b.session.Active()
	if err := b.session.Remove(constant.DefaultPaletteKey); err != nil {
		b.previousState()
		return notify(err.Error())
	}

	if viper.GetString(key.PaletteActive) == removed.String() {
		log.Infof("active palette removed, falling back to %s", constant.DefaultPaletteKey)
		viper.Set(key.PaletteActive, constant.DefaultPaletteKey)
	}

	b.statesHistory.Reset()
	b.setState(palettesState)
	return tea.Batch(rebind, b.reloadPalettes(), notify(fmt.Sprintf("Deleted %q", p.Name)))
}

func (b *statefulBubble) commitStop() tea.Cmd {
	h, ok := b.currentHandle()
	if !ok {
		return nil
	}

	if !h.dirty() {
		return nil
	}

	if !h.commit() {
		return notify("Default palettes are read-only")
	}

	// the session reports write failures on its own; keep the draft unless it was stored
	p, err := b.session.Palette()
	if err != nil || h.config.Index >= len(p.Colors) || p.Colors[h.config.Index] != h.draft.Clamp() {
		return notify("Colour was not saved")
	}

	h.draft = p.Colors[h.config.Index]
	h.config.Initial = h.draft
	return b.reloadPalettes()
}

func (b *statefulBubble) insertStop() tea.Cmd {
	if err := b.session.InsertColorAfter(b.selectedStop); err != nil {
		return notify(err.Error())
	}
	b.selectedStop++
	return rebind
}

func (b *statefulBubble) removeStop() tea.Cmd {
	if err := b.session.RemoveColorAt(b.selectedStop); err != nil {
		return notify(err.Error())
	}
	return rebind
}

// draftStrip renders the session palette with every uncommitted draft applied.
func (b *statefulBubble) draftStrip() []hsv.Render {
	live := b.liveHandles()
	if !lo.SomeBy(live, (*stopHandle).dirty) {
		return b.surface.pixels
	}

	colors := lo.Map(live, func(h *stopHandle, _ int) hsv.Color {
		return h.draft
	})
	if len(colors) < palette.MinColors {
		return b.surface.pixels
	}
	return preview.Strip(colors, b.renderer.Width)
}

func (b *statefulBubble) selectedPatternItem() (*pattern.Pattern, bool) {
	item, ok := b.patternsC.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	p, ok := item.internal.(*pattern.Pattern)
	return p, ok
}

// evaluatePattern renders one frame of the highlighted pattern over the session palette.
func (b *statefulBubble) evaluatePattern() {
	p, ok := b.selectedPatternItem()
	if !ok {
		return
	}

	pal, err := b.session.Palette()
	if err != nil {
		b.raiseError(err)
		return
	}

	strip, err := p.Evaluate(pal, b.patternTime, b.renderer.Width)
	if err != nil {
		b.patternStrip = nil
		b.patternErr = err
		return
	}

	b.selectedPattern = mo.Some(p)
	b.patternStrip = strip
	b.patternErr = nil
}
