package session

import "github.com/ledpal/ledpal/hsv"

// PickerConfig is what a picker widget gets when it is created for one stop.
type PickerConfig struct {
	Index   int
	Initial hsv.Color
	// Editable is false for default palettes; the widget only displays the colour.
	Editable bool
}

// Handle is one live picker widget.
type Handle interface {
	// OnCommit registers the callback that receives the finalized colour.
	OnCommit(func(hsv.Color))
	Close()
}

// Picker creates picker widgets.
type Picker interface {
	Create(PickerConfig) (Handle, error)
}

// Scheduler runs fn after the current render pass has completed.
type Scheduler func(fn func())
