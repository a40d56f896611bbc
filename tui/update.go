// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ledpal/ledpal/config"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/log"
	"github.com/ledpal/ledpal/query"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Ephemeral notifications (plain strings and ui.ClearNotificationMsg)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case rebindMsg:
		b.session.Flush()
		if live := len(b.liveHandles()); b.selectedStop >= live {
			b.selectedStop = live - 1
		}
		return b, cmd
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case palettesState:
		return b.updatePalettes(msg, cmd)
	case editorState:
		return b.updateEditor(msg, cmd)
	case colorInputState:
		return b.updateColorInput(msg, cmd)
	case renameState:
		return b.updateRename(msg, cmd)
	case confirmState:
		return b.updateConfirm(msg, cmd)
	case patternsState:
		return b.updatePatterns(msg, cmd)
	case errorState:
		return b.updateError(msg, cmd)
	}

	return b, cmd
}

func (b *statefulBubble) updatePalettes(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.palettesC.FilterState() != list.Filtering {
		entry, selected := b.selectedEntry()

		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && selected:
			if filter := b.palettesC.FilterValue(); filter != "" {
				if err := query.Remember(filter, 1); err != nil {
					log.Warn(err)
				}
			}
			return b, tea.Batch(cmd, b.openPalette(entry.key))
		case bubblesKey.Matches(msg, b.keymap.duplicate) && selected:
			if err := b.session.Select(entry.key); err != nil {
				b.raiseError(err)
				return b, cmd
			}
			return b, tea.Batch(cmd, b.duplicatePalette())
		case bubblesKey.Matches(msg, b.keymap.remove) && selected:
			if entry.palette.Default {
				return b, tea.Batch(cmd, notify("Default palettes cannot be deleted"))
			}
			if err := b.session.Select(entry.key); err != nil {
				b.raiseError(err)
				return b, cmd
			}
			b.newState(confirmState)
			return b, tea.Batch(cmd, rebind)
		case bubblesKey.Matches(msg, b.keymap.activate) && selected:
			viper.Set(key.PaletteActive, entry.key.String())
			if err := config.Write(); err != nil {
				log.Warn(err)
			}
			return b, tea.Batch(cmd, notify(fmt.Sprintf("%q is now the default palette", entry.palette.Name)))
		}
	}

	var listCmd tea.Cmd
	b.palettesC, listCmd = b.palettesC.Update(msg)
	return b, tea.Batch(cmd, listCmd)
}

func (b *statefulBubble) updateEditor(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	msg2, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, cmd
	}

	step := viper.GetFloat64(key.EditorStep)
	if step <= 0 {
		step = 0.01
	}

	live := b.liveHandles()
	adjust := func(delta float64) {
		if h, ok := b.currentHandle(); ok && h.config.Editable {
			h.adjust(b.channel, delta)
		}
	}

	switch {
	case bubblesKey.Matches(msg2, b.keymap.back):
		if h, ok := b.currentHandle(); ok && h.dirty() {
			h.draft = h.config.Initial
			return b, cmd
		}
		b.previousState()
		return b, tea.Batch(cmd, b.reloadPalettes())
	case bubblesKey.Matches(msg2, b.keymap.quit):
		return b, tea.Quit
	case bubblesKey.Matches(msg2, b.keymap.nextStop):
		if len(live) > 0 {
			b.selectedStop = (b.selectedStop + 1) % len(live)
		}
	case bubblesKey.Matches(msg2, b.keymap.prevStop):
		if len(live) > 0 {
			b.selectedStop = (b.selectedStop - 1 + len(live)) % len(live)
		}
	case bubblesKey.Matches(msg2, b.keymap.up):
		b.channel = (b.channel + 2) % 3
	case bubblesKey.Matches(msg2, b.keymap.down):
		b.channel = (b.channel + 1) % 3
	case bubblesKey.Matches(msg2, b.keymap.left):
		adjust(-step)
	case bubblesKey.Matches(msg2, b.keymap.right):
		adjust(step)
	case bubblesKey.Matches(msg2, b.keymap.coarseLeft):
		adjust(-step * 10)
	case bubblesKey.Matches(msg2, b.keymap.coarseRight):
		adjust(step * 10)
	case bubblesKey.Matches(msg2, b.keymap.commit):
		return b, tea.Batch(cmd, b.commitStop())
	case bubblesKey.Matches(msg2, b.keymap.typeColor):
		if h, ok := b.currentHandle(); ok && h.config.Editable {
			b.inputC.Prompt = fmt.Sprintf("Stop %d: ", b.selectedStop)
			b.inputC.Placeholder = "#ff8800, hsv(30, 100%, 100%) or 0.08,1,1"
			b.inputC.SetValue(h.draft.String())
			b.newState(colorInputState)
			return b, tea.Batch(cmd, b.inputC.Focus())
		}
	case bubblesKey.Matches(msg2, b.keymap.insert):
		return b, tea.Batch(cmd, b.insertStop())
	case bubblesKey.Matches(msg2, b.keymap.removeStop):
		return b, tea.Batch(cmd, b.removeStop())
	case bubblesKey.Matches(msg2, b.keymap.duplicate):
		return b, tea.Batch(cmd, b.duplicatePalette())
	case bubblesKey.Matches(msg2, b.keymap.rename):
		p, err := b.session.Palette()
		if err != nil {
			b.raiseError(err)
			return b, cmd
		}
		if p.Default {
			return b, tea.Batch(cmd, notify("Default palettes cannot be renamed"))
		}
		b.inputC.Prompt = "Name: "
		b.inputC.Placeholder = p.Name
		b.inputC.SetValue(p.Name)
		b.newState(renameState)
		return b, tea.Batch(cmd, b.inputC.Focus())
	case bubblesKey.Matches(msg2, b.keymap.remove):
		p, err := b.session.Palette()
		if err != nil {
			b.raiseError(err)
			return b, cmd
		}
		if p.Default {
			return b, tea.Batch(cmd, notify("Default palettes cannot be deleted"))
		}
		b.newState(confirmState)
	case bubblesKey.Matches(msg2, b.keymap.patterns):
		b.newState(patternsState)
		b.patternTime = 0
		listCmd := b.reloadPatterns()
		b.evaluatePattern()
		return b, tea.Batch(cmd, listCmd, tick())
	}

	return b, cmd
}

func (b *statefulBubble) updateColorInput(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.confirm):
			c, err := hsv.Parse(b.inputC.Value())
			if err != nil {
				return b, tea.Batch(cmd, notify(err.Error()))
			}

			b.inputC.Blur()
			b.previousState()
			if h, ok := b.currentHandle(); ok {
				h.draft = c.Clamp()
				return b, tea.Batch(cmd, b.commitStop())
			}
			return b, cmd
		}
	}

	var inputCmd tea.Cmd
	b.inputC, inputCmd = b.inputC.Update(msg)
	return b, tea.Batch(cmd, inputCmd)
}

func (b *statefulBubble) updateRename(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.confirm):
			name := strings.TrimSpace(b.inputC.Value())
			if err := b.session.Rename(name); err != nil {
				return b, tea.Batch(cmd, notify(err.Error()))
			}

			b.inputC.Blur()
			b.previousState()
			return b, tea.Batch(cmd, b.reloadPalettes(), notify(fmt.Sprintf("Renamed to %q", name)))
		}
	}

	var inputCmd tea.Cmd
	b.inputC, inputCmd = b.inputC.Update(msg)
	return b, tea.Batch(cmd, inputCmd)
}

func (b *statefulBubble) updateConfirm(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.yes), bubblesKey.Matches(msg, b.keymap.confirm):
			return b, tea.Batch(cmd, b.removePalette())
		case bubblesKey.Matches(msg, b.keymap.no), bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		}
	}

	return b, cmd
}

func (b *statefulBubble) updatePatterns(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		b.patternTime += tickInterval.Seconds() * viper.GetFloat64(key.PatternSpeed)
		b.evaluatePattern()
		return b, tea.Batch(cmd, tick())
	case tea.KeyMsg:
		if b.patternsC.FilterState() == list.Filtering {
			break
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.confirm):
			p, ok := b.selectedPatternItem()
			if !ok {
				return b, cmd
			}
			viper.Set(key.PatternDefault, p.ID)
			if err := config.Write(); err != nil {
				log.Warn(err)
			}
			return b, tea.Batch(cmd, notify(fmt.Sprintf("%q is now the default pattern", p.Name)))
		}
	}

	var listCmd tea.Cmd
	b.patternsC, listCmd = b.patternsC.Update(msg)
	b.evaluatePattern()
	return b, tea.Batch(cmd, listCmd)
}

func (b *statefulBubble) updateError(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, cmd
}
