// Package preview renders palettes into pixel strips and hands them to a drawing surface.
package preview

import (
	"fmt"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/gradient"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
)

// Strip samples the gradient through colors at width evenly spaced positions
// i/width and converts each sample to its render colour. A non-positive width
// falls back to constant.PreviewWidth.
func Strip(colors []hsv.Color, width int) []hsv.Render {
	if width <= 0 {
		width = constant.PreviewWidth
	}

	pixels := make([]hsv.Render, width)
	for i := range pixels {
		pixels[i] = gradient.Sample(colors, float64(i)/float64(width)).Render()
	}
	return pixels
}

// Surface is the external drawing target a strip is blitted onto.
// pixels holds width*height colours in row-major order.
type Surface interface {
	Blit(width, height int, pixels []hsv.Render) error
}

// Renderer draws palette previews onto a Surface.
type Renderer struct {
	Surface Surface
	Width   int
	Height  int
}

// NewRenderer returns a renderer with the default strip size.
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{
		Surface: surface,
		Width:   constant.PreviewWidth,
		Height:  constant.PreviewHeight,
	}
}

// Render samples p and blits it. Every row of the target repeats the strip.
func (r *Renderer) Render(p palette.Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}

	width, height := r.Width, r.Height
	if width <= 0 {
		width = constant.PreviewWidth
	}
	if height <= 0 {
		height = constant.PreviewHeight
	}

	strip := Strip(p.Colors, width)
	pixels := make([]hsv.Render, 0, width*height)
	for y := 0; y < height; y++ {
		pixels = append(pixels, strip...)
	}

	if err := r.Surface.Blit(width, height, pixels); err != nil {
		return fmt.Errorf("blit preview of %q: %w", p.Name, err)
	}
	return nil
}
