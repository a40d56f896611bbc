// Package mini implements a lightweight prompt-driven palette editor for
// terminals where the full interface is not wanted.
package mini

import (
	"io"
	"os"

	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/preview"
	"github.com/ledpal/ledpal/session"
	"github.com/ledpal/ledpal/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var truncateAt = 100

type Options struct {
	Repository *palette.Repository
	Out        io.Writer
}

type mini struct {
	width, height int

	out io.Writer

	state         state
	statesHistory util.Trail[state]

	repo     *palette.Repository
	session  *session.Session
	picker   *picker
	renderer *preview.Renderer

	pending      action
	selectedStop int
}

func newMini(options *Options) *mini {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	m := &mini{
		out:           out,
				repo:          options.Repository,
		picker:        newPicker(),
	}

	m.renderer = preview.NewRenderer(&preview.Terminal{Out: out, CellWidth: 1})
	m.renderer.Width = viper.GetInt(key.PreviewWidth)
	m.renderer.Height = viper.GetInt(key.PreviewHeight)

	m.session = session.New(m.repo, m.picker,
		session.WithRenderer(m.renderer.Render),
		session.WithErrorHandler(func(err error) { fail(err.Error()) }),
	)
	return m
}

func (m *mini) previousState() {
	if s, ok := m.statesHistory.Back(); ok {
		m.setState(s)
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// prompt-only states are not worth returning to
	if !lo.Contains([]state{colorEditState, renameState}, m.state) {
		m.statesHistory.Visit(m.state)
	}

	m.setState(s)
}

func Run(options *Options) error {
	m := newMini(options)
	defer m.session.Close()

	m.state = paletteSelectState

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
		m.renderer.Width = util.Min(m.renderer.Width, w)
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if isInterrupt(err) {
				return nil
			}
			return err
		}

		// rebinding happens once the preview of the current step was printed
		m.session.Flush()
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case paletteSelectState:
		return m.handlePaletteSelectState()
	case actionSelectState:
		return m.handleActionSelectState()
	case stopSelectState:
		return m.handleStopSelectState()
	case colorEditState:
		return m.handleColorEditState()
	case renameState:
		return m.handleRenameState()
	}

	return nil
}
