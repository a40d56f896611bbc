package mini

import (
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/session"
)

// handle is a prompt standing in for a picker widget of one stop.
type handle struct {
	config   session.PickerConfig
	onCommit func(hsv.Color)
	closed   bool
}

func (h *handle) OnCommit(fn func(hsv.Color)) {
	h.onCommit = fn
}

func (h *handle) Close() {
	h.closed = true
}

// picker keeps the live handles by stop index.
type picker struct {
	handles map[int]*handle
}

func newPicker() *picker {
	return &picker{handles: make(map[int]*handle)}
}

func (p *picker) Create(config session.PickerConfig) (session.Handle, error) {
	h := &handle{config: config}
	p.handles[config.Index] = h
	return h, nil
}

// commit delivers c to the handle of stop index and reports whether anything listened.
func (p *picker) commit(index int, c hsv.Color) bool {
	h, ok := p.handles[index]
	if !ok || h.closed || h.onCommit == nil {
		return false
	}

	h.onCommit(c)
	return true
}

func (p *picker) initial(index int) (hsv.Color, bool) {
	h, ok := p.handles[index]
	if !ok || h.closed {
		return hsv.Color{}, false
	}
	return h.config.Initial, true
}
