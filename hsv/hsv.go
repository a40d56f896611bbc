// Package hsv implements the colour model palettes are made of: HSV stops with
// every channel in unit range, and the HSL render form used for display.
package hsv

import (
	"encoding/json"
	"fmt"
	imgcolor "image/color"
	"math"

	"github.com/invopop/jsonschema"
	"github.com/ledpal/ledpal/util"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single palette stop. Hue is circular: 0 and 1 denote the same angle.
type Color struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// New returns a colour from unit-range channels.
func New(hue, saturation, value float64) Color {
	return Color{Hue: hue, Saturation: saturation, Value: value}
}

// Clamp bounds saturation and value to [0,1]. A hue outside [0,1] is wrapped;
// hue 1 is kept as is since it marks the far end of a full spectrum sweep.
func (c Color) Clamp() Color {
	if c.Hue < 0 || c.Hue > 1 {
		c.Hue = WrapHue(c.Hue)
	}
	c.Saturation = util.Clamp(c.Saturation, 0, 1)
	c.Value = util.Clamp(c.Value, 0, 1)
	return c
}

// WrapHue maps any hue onto [0,1).
func WrapHue(h float64) float64 {
	return h - math.Floor(h)
}

// ApproxEqual reports whether every channel of c and o differs by at most eps.
func (c Color) ApproxEqual(o Color, eps float64) bool {
	return math.Abs(c.Hue-o.Hue) <= eps &&
		math.Abs(c.Saturation-o.Saturation) <= eps &&
		math.Abs(c.Value-o.Value) <= eps
}

// Render converts the stop into its display form through HSV to HSL.
// Lightness 0 and 1 have no defined saturation; it is reported as 0 there.
func (c Color) Render() Render {
	c = c.Clamp()
	s, v := c.Saturation, c.Value

	l := (2 - s) * v / 2

	var s2 float64
	switch {
	case l <= 0 || l >= 1:
		s2 = 0
	case l < 0.5:
		s2 = s * v / (2 * l)
	default:
		s2 = s * v / (2 - 2*l)
	}

	return Render{
		Hue:        c.Hue * 360,
		Saturation: s2 * 100,
		Lightness:  l * 100,
	}
}

// colorful converts the stop into a go-colorful colour.
func (c Color) colorful() colorful.Color {
	c = c.Clamp()
	return colorful.Hsv(WrapHue(c.Hue)*360, c.Saturation, c.Value).Clamped()
}

// RGBA converts the stop to an opaque 8-bit pixel.
func (c Color) RGBA() imgcolor.RGBA {
	r, g, b := c.colorful().RGB255()
	return imgcolor.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex formats the stop as #rrggbb.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String formats the stop the way colour pickers accept it, e.g. hsv(180, 50%, 100%).
func (c Color) String() string {
	return fmt.Sprintf("hsv(%s, %s%%, %s%%)", trim(c.Hue*360), trim(c.Saturation*100), trim(c.Value*100))
}

// MarshalJSON encodes the stop as a [h, s, v] triple.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.Hue, c.Saturation, c.Value})
}

// UnmarshalJSON decodes a [h, s, v] triple.
func (c *Color) UnmarshalJSON(data []byte) error {
	var triple []float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("decode colour: %w", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("decode colour: expected 3 channels, got %d", len(triple))
	}
	*c = New(triple[0], triple[1], triple[2])
	return nil
}

// JSONSchema describes the persisted [h, s, v] triple.
func (Color) JSONSchema() *jsonschema.Schema {
	three := uint64(3)
	return &jsonschema.Schema{
		Type:        "array",
		Description: "HSV colour stop, every channel in [0, 1]",
		MinItems:    &three,
		MaxItems:    &three,
		Items: &jsonschema.Schema{
			Type:    "number",
			Minimum: json.Number("0"),
			Maximum: json.Number("1"),
		},
	}
}

// Render is the display form of a stop: hue in degrees, saturation and lightness in percent.
type Render struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// CSS formats the render colour as a CSS hsl() expression.
func (r Render) CSS() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", trim(r.Hue), trim(r.Saturation), trim(r.Lightness))
}

// RGBA converts the render colour to an opaque 8-bit pixel.
func (r Render) RGBA() imgcolor.RGBA {
	c := colorful.Hsl(math.Mod(r.Hue, 360), r.Saturation/100, r.Lightness/100).Clamped()
	red, green, blue := c.RGB255()
	return imgcolor.RGBA{R: red, G: green, B: blue, A: 255}
}

func trim(f float64) string {
	return fmt.Sprintf("%.4g", math.Round(f*100)/100)
}
