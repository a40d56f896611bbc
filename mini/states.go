package mini

import (
	"fmt"
	"strings"

	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/style"
)

type state int

const (
	paletteSelectState state = iota + 1
	actionSelectState
	stopSelectState
	colorEditState
	renameState
	quitState
)

type action int

const (
	editAction action = iota
	insertAction
	removeColorAction
	duplicateAction
	renameAction
	deleteAction
	backAction
	quitAction
)

var actionNames = map[action]string{
	editAction:        "Edit color",
	insertAction:      "Insert color after",
	removeColorAction: "Remove color",
	duplicateAction:   "Duplicate",
	renameAction:      "Rename",
	deleteAction:      "Delete",
	backAction:        "Back",
	quitAction:        "Quit",
}

func (a action) String() string {
	return actionNames[a]
}

// item is a menu entry that is either a value or a navigation action.
type item[T any] struct {
	label  string
	value  T
	action action
	nav    bool
}

func (i item[T]) String() string {
	return i.label
}

func navigation[T any](a action) item[T] {
	return item[T]{label: a.String(), action: a, nav: true}
}

func (m *mini) handlePaletteSelectState() error {
	palettes, err := m.repo.List()
	if err != nil {
		return err
	}

	var items []item[palette.Key]
	for _, k := range palettes.Keys() {
		p, _ := palettes.Get(k)
		label := p.String()
		if p.Default {
			label += " " + icon.Get(icon.Lock)
		}
		items = append(items, item[palette.Key]{label: label, value: k})
	}
	items = append(items, navigation[palette.Key](quitAction))

	title("Select Palette")
	i, err := menu("Palette", items)
	if err != nil {
		return err
	}

	if items[i].nav {
		m.setState(quitState)
		return nil
	}

	if err := m.session.Select(items[i].value); err != nil {
		return err
	}
	m.newState(actionSelectState)
	return nil
}

func (m *mini) handleActionSelectState() error {
	p, err := m.session.Palette()
	if err != nil {
		return err
	}

	actions := []action{duplicateAction, backAction, quitAction}
	if !p.Default {
		actions = []action{
			editAction, insertAction, removeColorAction,
			duplicateAction, renameAction, deleteAction,
			backAction, quitAction,
		}
	}

	title(p.Name)
	items := make([]item[action], len(actions))
	for i, a := range actions {
		items[i] = item[action]{label: a.String(), value: a}
	}

	i, err := menu("Action", items)
	if err != nil {
		return err
	}

	switch a := items[i].value; a {
	case editAction, insertAction, removeColorAction:
		m.pending = a
		m.newState(stopSelectState)
	case duplicateAction:
		k, err := m.session.Duplicate()
		if err != nil {
			return err
		}
		success(fmt.Sprintf("duplicated as %s", style.Fg(color.Yellow)(k.String())))
	case renameAction:
		m.newState(renameState)
	case deleteAction:
		ok, err := confirm(fmt.Sprintf("Delete %q?", p.Name))
		if err != nil || !ok {
			return err
		}
		if err := m.session.Remove(constant.DefaultPaletteKey); err != nil {
			return err
		}
		success(fmt.Sprintf("deleted %s", p.Name))
		m.statesHistory.Reset()
		m.setState(paletteSelectState)
	case backAction:
		m.previousState()
	case quitAction:
		m.setState(quitState)
	}

	return nil
}

func stopLabel(i int, c hsv.Color) string {
	return fmt.Sprintf("%s %2d %s", style.Swatch(color.FromRGBA(c.RGBA()), 2), i, c)
}

func (m *mini) handleStopSelectState() error {
	p, err := m.session.Palette()
	if err != nil {
		return err
	}

	items := make([]item[int], 0, len(p.Colors)+1)
	for i, c := range p.Colors {
		items = append(items, item[int]{label: stopLabel(i, c), value: i})
	}
	items = append(items, navigation[int](backAction))

	title(m.pending.String())
	i, err := menu("Stop", items)
	if err != nil {
		return err
	}

	if items[i].nav {
		m.previousState()
		return nil
	}

	stop := items[i].value
	switch m.pending {
	case editAction:
		m.selectedStop = stop
		m.newState(colorEditState)
	case insertAction:
		if err := m.session.InsertColorAfter(stop); err != nil {
			fail(err.Error())
		}
		m.previousState()
	case removeColorAction:
		if err := m.session.RemoveColorAt(stop); err != nil {
			fail(err.Error())
		}
		m.previousState()
	}

	return nil
}

func (m *mini) handleColorEditState() error {
	initial, ok := m.picker.initial(m.selectedStop)
	if !ok {
		fail("stop is no longer bound")
		m.previousState()
		return nil
	}

	response, err := input(
		fmt.Sprintf("Stop %d (hex, hsv(h, s%%, v%%) or h,s,v)", m.selectedStop),
		initial.String(),
		func(s string) error {
			_, err := hsv.Parse(s)
			return err
		},
	)
	if err != nil {
		return err
	}

	c, _ := hsv.Parse(response)
	if !m.picker.commit(m.selectedStop, c) {
		fail("palette is read-only")
	}

	m.previousState()
	return nil
}

func (m *mini) handleRenameState() error {
	p, err := m.session.Palette()
	if err != nil {
		return err
	}

	response, err := input("Name", p.Name, func(s string) error {
		if strings.TrimSpace(s) == "" {
			return palette.ErrEmptyName
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := m.session.Rename(response); err != nil {
		fail(err.Error())
	}

	m.previousState()
	return nil
}
