// Package gradient samples palettes into continuous colours.
//
// A palette of n stops is split into n-1 equal sectors over [0,1). Within a
// sector, saturation and value are interpolated linearly and hue takes the
// shorter way around the hue circle, except when the two stops sit exactly at
// 0 and 1: that pair sweeps the whole spectrum.
package gradient

import (
	"math"

	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
)

// Sampler maps a position in [0,1) to a colour.
type Sampler interface {
	At(t float64) hsv.Color
}

// Sample returns the colour at position t of the gradient through colors.
// It requires len(colors) >= 2 and 0 <= t < 1.
func Sample(colors []hsv.Color, t float64) hsv.Color {
	sectors := len(colors) - 1
	sectorSize := 1 / float64(sectors)

	sector := int(math.Floor(t / sectorSize))
	if sector < 0 {
		sector = 0
	}
	if sector > sectors-1 {
		sector = sectors - 1
	}
	local := t/sectorSize - float64(sector)

	return Lerp(colors[sector], colors[sector+1], local)
}

// Lerp interpolates between two stops at fraction f.
func Lerp(c1, c2 hsv.Color, f float64) hsv.Color {
	return hsv.Color{
		Hue:        hsv.WrapHue(c1.Hue + f*HueDelta(c1.Hue, c2.Hue)),
		Saturation: c1.Saturation + f*(c2.Saturation-c1.Saturation),
		Value:      c1.Value + f*(c2.Value-c1.Value),
	}
}

// HueDelta returns the signed hue distance travelled from h1 to h2.
func HueDelta(h1, h2 float64) float64 {
	delta := h2 - h1
	if math.Abs(delta) == 1 {
		return delta
	}
	if delta < -0.5 {
		delta++
	}
	if delta > 0.5 {
		delta--
	}
	return delta
}

// Palette samples a palette.
type Palette struct {
	palette.Palette
}

// Of returns a Sampler over p.
func Of(p palette.Palette) Palette {
	return Palette{p}
}

// At samples the palette at t.
func (p Palette) At(t float64) hsv.Color {
	return Sample(p.Colors, t)
}
