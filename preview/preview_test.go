package preview

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ledpal/ledpal/gradient"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
	. "github.com/smartystreets/goconvey/convey"
)

type recordingSurface struct {
	width, height int
	pixels        []hsv.Render
	calls         int
	err           error
}

func (s *recordingSurface) Blit(width, height int, pixels []hsv.Render) error {
	s.calls++
	s.width, s.height, s.pixels = width, height, pixels
	return s.err
}

func TestStrip(t *testing.T) {
	Convey("Given the full spectrum palette", t, func() {
		colors := []hsv.Color{hsv.New(0, 1, 1), hsv.New(1, 1, 1)}

		Convey("The default width is 64", func() {
			So(Strip(colors, 0), ShouldHaveLength, 64)
		})

		Convey("Pixel i is the sample at i/width", func() {
			strip := Strip(colors, 8)
			So(strip, ShouldHaveLength, 8)
			for i, px := range strip {
				So(px, ShouldResemble, gradient.Sample(colors, float64(i)/8).Render())
			}
			So(strip[4].Hue, ShouldAlmostEqual, 180)
		})

		Convey("It is deterministic", func() {
			So(Strip(colors, 16), ShouldResemble, Strip(colors, 16))
		})
	})
}

func TestRenderer(t *testing.T) {
	Convey("Given a renderer", t, func() {
		surface := &recordingSurface{}
		r := NewRenderer(surface)
		p := palette.New("p", hsv.New(0, 1, 1), hsv.New(0.5, 1, 1))

		Convey("It blits a 64x1 strip by default", func() {
			So(r.Render(p), ShouldBeNil)
			So(surface.calls, ShouldEqual, 1)
			So(surface.width, ShouldEqual, 64)
			So(surface.height, ShouldEqual, 1)
			So(surface.pixels, ShouldHaveLength, 64)
		})

		Convey("Taller surfaces repeat the strip per row", func() {
			r.Width, r.Height = 4, 3
			So(r.Render(p), ShouldBeNil)
			So(surface.pixels, ShouldHaveLength, 12)
			So(surface.pixels[8:12], ShouldResemble, surface.pixels[0:4])
		})

		Convey("Invalid palettes are not drawn", func() {
			err := r.Render(palette.New("thin", hsv.New(0, 1, 1)))
			So(errors.Is(err, palette.ErrMinimumColorCount), ShouldBeTrue)
			So(surface.calls, ShouldEqual, 0)
		})

		Convey("Surface errors are wrapped", func() {
			surface.err = errors.New("boom")
			So(r.Render(p), ShouldNotBeNil)
		})
	})
}

func TestSurfaces(t *testing.T) {
	Convey("Given a strip", t, func() {
		strip := Strip([]hsv.Color{hsv.New(0, 1, 1), hsv.New(0.5, 1, 1)}, 4)

		Convey("Image fills every pixel", func() {
			img := &Image{}
			So(img.Blit(4, 1, strip), ShouldBeNil)
			So(img.RGBA.Bounds().Dx(), ShouldEqual, 4)
			So(img.RGBA.RGBAAt(0, 0), ShouldResemble, strip[0].RGBA())
			So(img.RGBA.RGBAAt(0, 0).R, ShouldEqual, 255)
		})

		Convey("Terminal writes one line per row", func() {
			var buf bytes.Buffer
			term := &Terminal{Out: &buf, CellWidth: 2}
			So(term.Blit(2, 2, append(strip[:2:2], strip[:2]...)), ShouldBeNil)
			So(strings.Count(buf.String(), "\n"), ShouldEqual, 2)
		})

		Convey("Mismatched sizes are rejected", func() {
			So(errors.Is((&Image{}).Blit(3, 1, strip), errPixelCount), ShouldBeTrue)
		})
	})
}
