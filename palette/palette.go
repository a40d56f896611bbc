// Package palette implements the palette data model and the repository that
// guards its invariants: at least two stops, and built-in palettes that the
// editing surface can neither change nor delete.
package palette

import (
	"fmt"

	"github.com/ledpal/ledpal/hsv"
)

// MinColors is the smallest number of stops a palette may have.
const MinColors = 2

// Key identifies a palette in a collection. Keys are opaque and assigned by the caller.
type Key string

func (k Key) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler so keys can be JSON object names.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	*k = Key(text)
	return nil
}

// Palette is a named, ordered sequence of colour stops.
type Palette struct {
	Name    string      `json:"name" jsonschema:"minLength=1"`
	Default bool        `json:"default"`
	Colors  []hsv.Color `json:"colors" jsonschema:"minItems=2"`
}

// New returns a user palette with a private copy of colors.
func New(name string, colors ...hsv.Color) Palette {
	return Palette{
		Name:   name,
		Colors: append([]hsv.Color(nil), colors...),
	}
}

// Clone returns a deep copy: the clone never shares colour storage with p.
func (p Palette) Clone() Palette {
	p.Colors = append([]hsv.Color(nil), p.Colors...)
	return p
}

// Sectors returns the number of interpolation intervals between consecutive stops.
func (p Palette) Sectors() int {
	return len(p.Colors) - 1
}

// Validate reports whether p satisfies the palette invariants.
func (p Palette) Validate() error {
	if len(p.Colors) < MinColors {
		return fmt.Errorf("%w: %q has %d", ErrMinimumColorCount, p.Name, len(p.Colors))
	}
	return nil
}

func (p Palette) String() string {
	return fmt.Sprintf("%s (%d colors)", p.Name, len(p.Colors))
}
