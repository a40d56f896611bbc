// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/session"
	"github.com/ledpal/ledpal/util"
)

// stopHandle is the editor widget of one stop. Adjustments go to draft until committed.
type stopHandle struct {
	config   session.PickerConfig
	draft    hsv.Color
	onCommit func(hsv.Color)
	closed   bool
}

func (h *stopHandle) OnCommit(fn func(hsv.Color)) {
	h.onCommit = fn
}

func (h *stopHandle) Close() {
	h.closed = true
}

func (h *stopHandle) dirty() bool {
	return h.draft != h.config.Initial
}

// adjust moves one channel of the draft by delta. Hue wraps around, the others clamp.
func (h *stopHandle) adjust(channel int, delta float64) {
	switch channel {
	case 0:
		h.draft.Hue = hsv.WrapHue(h.draft.Hue + delta)
	case 1:
		h.draft.Saturation = util.Clamp(h.draft.Saturation+delta, 0, 1)
	case 2:
		h.draft.Value = util.Clamp(h.draft.Value+delta, 0, 1)
	}
}

// commit hands the draft to the session. It reports false for read-only handles.
func (h *stopHandle) commit() bool {
	if h.closed || h.onCommit == nil {
		return false
	}
	h.onCommit(h.draft)
	return true
}

// Create implements session.Picker. Handles replace the previous ones index by index.
func (b *statefulBubble) Create(config session.PickerConfig) (session.Handle, error) {
	h := &stopHandle{config: config, draft: config.Initial}

	for len(b.handles) <= config.Index {
		b.handles = append(b.handles, nil)
	}
	b.handles[config.Index] = h
	return h, nil
}

// liveHandles returns the open handles in stop order.
func (b *statefulBubble) liveHandles() []*stopHandle {
	var live []*stopHandle
	for _, h := range b.handles {
		if h != nil && !h.closed {
			live = append(live, h)
		}
	}
	return live
}

func (b *statefulBubble) currentHandle() (*stopHandle, bool) {
	live := b.liveHandles()
	if b.selectedStop < 0 || b.selectedStop >= len(live) {
		return nil, false
	}
	return live[b.selectedStop], true
}

// stripSurface keeps the last blitted preview row for the view to draw.
type stripSurface struct {
	pixels []hsv.Render
}

func (s *stripSurface) Blit(width, _ int, pixels []hsv.Render) error {
	s.pixels = append(s.pixels[:0], pixels[:width]...)
	return nil
}
