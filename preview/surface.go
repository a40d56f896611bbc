package preview

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/style"
)

var errPixelCount = errors.New("pixel count does not match surface size")

func checkSize(width, height int, pixels []hsv.Render) error {
	if width*height != len(pixels) {
		return fmt.Errorf("%w: %dx%d with %d pixels", errPixelCount, width, height, len(pixels))
	}
	return nil
}

// Terminal draws each pixel as a true-colour cell of CellWidth columns.
type Terminal struct {
	Out       io.Writer
	CellWidth int
}

// Blit writes one line per pixel row.
func (t *Terminal) Blit(width, height int, pixels []hsv.Render) error {
	if err := checkSize(width, height, pixels); err != nil {
		return err
	}

	cell := t.CellWidth
	if cell <= 0 {
		cell = 1
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for _, px := range pixels[y*width : (y+1)*width] {
			b.WriteString(style.Swatch(color.FromRGBA(px.RGBA()), cell))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(t.Out, b.String())
	return err
}

// String renders pixels into a single line without a trailing newline, for embedding into views.
func (t *Terminal) String(pixels []hsv.Render) string {
	var b strings.Builder
	cell := t.CellWidth
	if cell <= 0 {
		cell = 1
	}
	for _, px := range pixels {
		b.WriteString(style.Swatch(color.FromRGBA(px.RGBA()), cell))
	}
	return b.String()
}

// Image draws into an RGBA image, reallocating it when the size changes.
type Image struct {
	RGBA *image.RGBA
}

// Blit writes every pixel into the image.
func (m *Image) Blit(width, height int, pixels []hsv.Render) error {
	if err := checkSize(width, height, pixels); err != nil {
		return err
	}

	if m.RGBA == nil || m.RGBA.Bounds().Dx() != width || m.RGBA.Bounds().Dy() != height {
		m.RGBA = image.NewRGBA(image.Rect(0, 0, width, height))
	}

	for i, px := range pixels {
		m.RGBA.SetRGBA(i%width, i/width, px.RGBA())
	}
	return nil
}
