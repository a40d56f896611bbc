// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/internal/ui"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/palette"
	"github.com/ledpal/ledpal/pattern"
	"github.com/ledpal/ledpal/preview"
	"github.com/ledpal/ledpal/session"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the application state: component models, the
// editing session and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Trail[state]

	keymap *statefulKeymap

	// components
	palettesC list.Model
	patternsC list.Model
	inputC    textinput.Model
	channelsC [3]progress.Model
	helpC     help.Model

	repo     *palette.Repository
	session  *session.Session
	renderer *preview.Renderer
	surface  *stripSurface

	// handles are the live stop pickers, indexed by stop
	handles      []*stopHandle
	selectedStop int
	channel      int

	// pattern preview
	selectedPattern mo.Option[*pattern.Pattern]
	patternStrip    []hsv.Render
	patternTime     float64
	patternErr      error

	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to s, recording the previous state in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push these states to history
	if !lo.Contains([]state{
		errorState,
		colorInputState,
		renameState,
		confirmState,
	}, b.state) {
		b.statesHistory.Visit(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.Back(); ok {
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.palettesC.SetSize(listWidth, listHeight)
	b.palettesC.Help.Width = listWidth

	b.patternsC.SetSize(listWidth, listHeight-patternPreviewLines)
	b.patternsC.Help.Width = listWidth

	for i := range b.channelsC {
		b.channelsC[i].Width = util.Max(10, styledWidth-channelLabelWidth)
	}
	b.inputC.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth

	b.renderer.Width = util.Max(1, util.Min(viper.GetInt(key.PreviewWidth), styledWidth))
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := &statefulBubble{
				keymap:        keymap,
		repo:          options.Repository,
		notifier:      &ui.Model{},
		options:       options,
	}

	bubble.surface = &stripSurface{}
	bubble.renderer = preview.NewRenderer(bubble.surface)
	bubble.renderer.Width = viper.GetInt(key.PreviewWidth)
	bubble.renderer.Height = 1

	bubble.session = session.New(bubble.repo, bubble,
		session.WithRenderer(bubble.renderer.Render),
		session.WithErrorHandler(bubble.raiseError),
	)

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Second * 3
		listC.SetShowPagination(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.CharLimit = 60

	bubble.palettesC = makeList("Palettes", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1),
		),
	})
	bubble.palettesC.SetStatusBarItemName("palette", "palettes")

	bubble.patternsC = makeList("Patterns", false, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1),
		),
	})
	bubble.patternsC.SetStatusBarItemName("pattern", "patterns")

	for i, c := range []lipgloss.Color{style.Mauve, style.Blue, style.Yellow} {
		bubble.channelsC[i] = progress.New(
			progress.WithSolidFill(string(c)),
			progress.WithoutPercentage(),
		)
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}
