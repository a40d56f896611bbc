// Package session applies single stop edits coming from picker widgets back
// into the palette repository and keeps the widgets bound to the right stops.
package session

import (
	"fmt"

	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/log"
	"github.com/ledpal/ledpal/palette"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
)

// RenderFunc redraws the preview of a palette.
type RenderFunc func(palette.Palette) error

// Session binds one picker handle per stop of the active palette.
// It runs on a single event loop and holds no locks.
type Session struct {
	repo    *palette.Repository
	picker  Picker
	render  RenderFunc
	onError func(error)

	schedule Scheduler
	queue    []func()

	active     palette.Key
	handles    []Handle
	generation int
	stale      bool
	scheduled  bool
}

// Option configures a Session.
type Option func(*Session)

// WithScheduler replaces the default queue that Flush drains.
func WithScheduler(s Scheduler) Option {
	return func(session *Session) {
		session.schedule = s
	}
}

// WithRenderer sets the preview callback invoked after every colour change.
func WithRenderer(render RenderFunc) Option {
	return func(session *Session) {
		session.render = render
	}
}

// WithErrorHandler receives errors raised while handling commits and rebinds,
// which have no caller to return them to.
func WithErrorHandler(handler func(error)) Option {
	return func(session *Session) {
		session.onError = handler
	}
}

// New returns a session with nothing selected.
func New(repo *palette.Repository, picker Picker, options ...Option) *Session {
	s := &Session{
		repo:    repo,
		picker:  picker,
		render:  func(palette.Palette) error { return nil },
		onError: func(error) {},
	}
	s.schedule = s.enqueue

	for _, option := range options {
		option(s)
	}

	return s
}

// Active returns the key of the selected palette.
func (s *Session) Active() palette.Key {
	return s.active
}

// Palette returns the selected palette as currently stored.
func (s *Session) Palette() (palette.Palette, error) {
	return s.repo.Get(s.active)
}

// Stale reports whether a rebind is pending.
func (s *Session) Stale() bool {
	return s.stale
}

// Bound returns the number of live picker handles.
func (s *Session) Bound() int {
	return len(s.handles)
}

// Select makes key the active palette, renders it and schedules a rebind.
func (s *Session) Select(key palette.Key) error {
	p, err := s.repo.Get(key)
	if err != nil {
		return err
	}

	s.active = key
	s.logger().Debug("palette selected")

	if err := s.render(p); err != nil {
		return err
	}
	s.markStale()
	return nil
}

// InsertColorAfter duplicates stop index of the active palette.
func (s *Session) InsertColorAfter(index int) error {
	return s.structural(func() error {
		return s.repo.InsertColorAfter(s.active, index)
	})
}

// RemoveColorAt removes stop index of the active palette.
func (s *Session) RemoveColorAt(index int) error {
	return s.structural(func() error {
		return s.repo.RemoveColorAt(s.active, index)
	})
}

// Duplicate copies the active palette and selects the copy.
func (s *Session) Duplicate() (palette.Key, error) {
	key, err := s.repo.Duplicate(s.active)
	if err != nil {
		return "", err
	}
	return key, s.Select(key)
}

// Remove deletes the active palette and selects fallback.
func (s *Session) Remove(fallback palette.Key) error {
	if err := s.repo.Remove(s.active); err != nil {
		return err
	}
	return s.Select(fallback)
}

// Rename renames the active palette. Stops are untouched so no rebind is needed.
func (s *Session) Rename(name string) error {
	return s.repo.Rename(s.active, name)
}

// Flush runs every rebind queued by the default scheduler. Work queued while
// flushing runs in the same call.
func (s *Session) Flush() {
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		next()
	}
}

// Close tears down every picker handle.
func (s *Session) Close() {
	s.teardown()
	s.queue = nil
}

func (s *Session) structural(edit func() error) error {
	if err := edit(); err != nil {
		return err
	}

	p, err := s.repo.Get(s.active)
	if err != nil {
		return err
	}
	if err := s.render(p); err != nil {
		return err
	}

	s.markStale()
	return nil
}

// markStale retires the live handles at once. Their indices may no longer
// match the palette, so commits from them are dropped until the rebind.
func (s *Session) markStale() {
	s.stale = true
	s.generation++
	if s.scheduled {
		return
	}

	s.scheduled = true
	s.schedule(s.rebind)
}

func (s *Session) enqueue(fn func()) {
	s.queue = append(s.queue, fn)
}

// rebind recreates one handle per stop against the current index set.
func (s *Session) rebind() {
	s.scheduled = false
	if !s.stale {
		return
	}
	s.stale = false

	s.teardown()

	p, err := s.repo.Get(s.active)
	if err != nil {
		s.onError(err)
		return
	}

	editable := !p.Default
	generation := s.generation

	for i, c := range p.Colors {
		h, err := s.picker.Create(PickerConfig{
			Index:    i,
			Initial:  c,
			Editable: editable,
		})
		if err != nil {
			s.onError(fmt.Errorf("create picker for stop %d: %w", i, err))
			continue
		}

		if editable {
			index := i
			h.OnCommit(func(c hsv.Color) {
				if generation != s.generation {
					return
				}
				s.commit(index, c)
			})
		}

		s.handles = append(s.handles, h)
	}

	s.logger().WithFields(logrus.Fields{
		"handles":  len(s.handles),
		"editable": editable,
	}).Debug("pickers bound")
}

func (s *Session) teardown() {
	lo.ForEach(s.handles, func(h Handle, _ int) {
		h.Close()
	})
	s.handles = nil
	s.generation++
}

func (s *Session) commit(index int, c hsv.Color) {
	if err := s.repo.SetColorAt(s.active, index, c); err != nil {
		s.onError(err)
		return
	}

	p, err := s.repo.Get(s.active)
	if err != nil {
		s.onError(err)
		return
	}
	if err := s.render(p); err != nil {
		s.onError(err)
	}
}

func (s *Session) logger() *logrus.Entry {
	return log.WithFields(logrus.Fields{"palette": s.active.String()})
}
