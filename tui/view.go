// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/preview"
	"github.com/ledpal/ledpal/style"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

var channelNames = [3]string{"Hue", "Saturation", "Value"}

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case palettesState:
		output = b.viewPalettes()
	case editorState:
		output = b.viewEditor()
	case colorInputState:
		output = b.viewInput("Type Color")
	case renameState:
		output = b.viewInput("Rename Palette")
	case confirmState:
		output = b.viewConfirm()
	case patternsState:
		output = b.viewPatterns()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewPalettes() string {
	return listExtraPaddingStyle.Render(b.palettesC.View())
}

func (b *statefulBubble) stripView() string {
	terminal := &preview.Terminal{CellWidth: 1}
	return terminal.String(b.draftStrip())
}

func (b *statefulBubble) viewEditor() string {
	p, err := b.session.Palette()
	if err != nil {
		return b.viewError()
	}

	name := p.Name
	if p.Default {
		name = fmt.Sprintf("%s %s", name, icon.Get(icon.Lock))
	}

	live := b.liveHandles()
	cell := 4
	if len(live) > 0 {
		cell = max(2, min(8, b.width/len(live)-1))
	}

	var swatches, markers strings.Builder
	for i, h := range live {
		swatches.WriteString(style.Swatch(color.FromRGBA(h.draft.RGBA()), cell))
		swatches.WriteString(" ")

		mark := strings.Repeat(" ", cell)
		if i == b.selectedStop {
			mark = style.Fg(style.AccentColor)(strings.Repeat("▔", cell))
		}
		markers.WriteString(mark)
		markers.WriteString(" ")
	}

	lines := []string{
		style.Title(name),
		"",
		b.stripView(),
		"",
		swatches.String(),
		markers.String(),
		"",
	}

	if h, ok := b.currentHandle(); ok {
		values := [3]float64{h.draft.Hue, h.draft.Saturation, h.draft.Value}
		for i, v := range values {
			label := fmt.Sprintf("%-11s %3.0f%%", channelNames[i], v*100)
			if i == b.channel {
				label = style.Fg(style.AccentColor)(label)
			} else {
				label = style.Faint(label)
			}
			lines = append(lines, label+" "+b.channelsC[i].ViewAs(v))
		}

		status := h.draft.String()
		if h.dirty() {
			status += style.Faint(" (enter to apply)")
		}
		if !h.config.Editable {
			status += " " + style.Faint(icon.Get(icon.Lock)+" read-only")
		}
		lines = append(lines, "", fmt.Sprintf("%s %d  %s", icon.Get(icon.Stop), b.selectedStop, status))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewInput(title string) string {
	lines := []string{
		style.Title(title),
		"",
		b.inputC.View(),
		"",
		style.Faint("(Enter to confirm, Esc to cancel)"),
	}

	return b.renderLines(false, lines)
}

func (b *statefulBubble) viewConfirm() string {
	p, err := b.session.Palette()
	if err != nil {
		return b.viewError()
	}

	lines := []string{
		style.ErrorTitle("Delete Palette"),
		"",
		fmt.Sprintf("%s Delete %s? This cannot be undone.", icon.Get(icon.Question), style.Fg(color.Purple)(p.Name)),
		"",
		b.stripView(),
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewPatterns() string {
	var strip string
	switch {
	case b.patternStrip != nil:
		terminal := &preview.Terminal{CellWidth: 1}
		strip = terminal.String(b.patternStrip)
	case b.patternErr != nil:
		strip = style.Fg(style.ErrorColor)(wrap.String(b.patternErr.Error(), b.width))
	}

	name := ""
	if p, ok := b.selectedPattern.Get(); ok {
		name = style.Faint(fmt.Sprintf("%s t=%.2f", p.Name, b.patternTime))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		listExtraPaddingStyle.Render(b.patternsC.View()),
		paddingStyle.Render(strip+"\n"+name),
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	message := "unknown error"
	if b.lastError != nil {
		message = b.lastError.Error()
	}
	errorMsg := wrap.String(errorStyle.Render(message), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
