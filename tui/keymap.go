// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/style"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm, back, yes, no,
	up, down, left, right,
	coarseLeft, coarseRight,
	top, bottom,
	nextStop, prevStop,
	commit, typeColor,
	insert, removeStop,
	duplicate, rename, remove,
	patterns, activate,
	filter,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		no: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "decrease"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "increase"),
		),
		coarseLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "decrease ×10"),
		),
		coarseRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "increase ×10"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		nextStop: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next stop"),
		),
		prevStop: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev stop"),
		),
		commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("apply")),
		),
		typeColor: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "type color"),
		),
		insert: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "insert stop"),
		),
		removeStop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove stop"),
		),
		duplicate: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "duplicate"),
		),
		rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		patterns: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "patterns"),
		),
		activate: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save as default"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case palettesState:
		return h(k.confirm, k.duplicate, k.remove), h(k.confirm, k.duplicate, k.remove, k.activate, k.filter)
	case editorState:
		return h(k.nextStop, k.left, k.right, k.commit, k.showHelp),
			h(k.nextStop, k.prevStop, k.up, k.down, k.left, k.right, k.coarseLeft, k.coarseRight,
				k.commit, k.typeColor, k.insert, k.removeStop, k.duplicate, k.rename, k.remove, k.patterns, k.back)
	case colorInputState, renameState:
		return to2(h(k.confirm, k.back))
	case confirmState:
		return to2(h(k.yes, k.no))
	case patternsState:
		return to2(h(withDescription(k.confirm, "use pattern"), k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               k.filter,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
