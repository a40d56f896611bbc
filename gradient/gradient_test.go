package gradient

import (
	"math"
	"testing"

	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
	. "github.com/smartystreets/goconvey/convey"
)

const eps = 1e-9

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestEndpoints(t *testing.T) {
	Convey("Given palettes of several sizes", t, func() {
		for _, p := range []palette.Palette{
			palette.New("two", hsv.New(0.1, 0.2, 0.3), hsv.New(0.4, 0.5, 0.6)),
			palette.New("three", hsv.New(0.2, 1, 1), hsv.New(0.3, 0.5, 0.2), hsv.New(0.7, 0.1, 0.9)),
			palette.New("five", hsv.New(0, 1, 1), hsv.New(0.2, 1, 0.5), hsv.New(0.4, 0.3, 1), hsv.New(0.6, 1, 1), hsv.New(0.8, 0.9, 0.1)),
		} {
			n := len(p.Colors)

			Convey("sample(0) equals the first stop for "+p.Name, func() {
				So(Sample(p.Colors, 0).ApproxEqual(p.Colors[0], eps), ShouldBeTrue)
			})

			Convey("sample(t->1) approaches the last stop for "+p.Name, func() {
				got := Sample(p.Colors, 1-1e-12)
				last := p.Colors[n-1]
				So(hueDistance(got.Hue, last.Hue), ShouldBeLessThan, 1e-6)
				So(got.Saturation, ShouldAlmostEqual, last.Saturation, 1e-6)
				So(got.Value, ShouldAlmostEqual, last.Value, 1e-6)
			})
		}
	})
}

func TestSectorContinuity(t *testing.T) {
	Convey("Given a four-stop palette", t, func() {
		colors := []hsv.Color{hsv.New(0.9, 1, 1), hsv.New(0.1, 0.5, 0.8), hsv.New(0.4, 0.2, 0.3), hsv.New(0.45, 1, 1)}

		Convey("Both sectors agree at every shared boundary", func() {
			for i := 1; i < len(colors)-1; i++ {
				fromLeft := Lerp(colors[i-1], colors[i], 1)
				fromRight := Lerp(colors[i], colors[i+1], 0)
				So(hueDistance(fromLeft.Hue, fromRight.Hue), ShouldBeLessThan, eps)
				So(fromLeft.Saturation, ShouldAlmostEqual, fromRight.Saturation, eps)
				So(fromLeft.Value, ShouldAlmostEqual, fromRight.Value, eps)

				boundary := float64(i) / float64(len(colors)-1)
				So(Sample(colors, boundary).ApproxEqual(colors[i], 1e-9), ShouldBeTrue)
			}
		})
	})
}

func TestHueShortestPath(t *testing.T) {
	Convey("Given stops at hue 0.1 and 0.9", t, func() {
		colors := []hsv.Color{hsv.New(0.1, 1, 1), hsv.New(0.9, 1, 1)}

		Convey("The midpoint wraps through zero", func() {
			h := Sample(colors, 0.5).Hue
			So(hueDistance(h, 0), ShouldBeLessThan, 1e-9)
			So(math.Abs(h-0.5), ShouldBeGreaterThan, 0.4)
		})

		Convey("Hue stays in [0,1)", func() {
			for i := 0; i < 64; i++ {
				h := Sample(colors, float64(i)/64).Hue
				So(h, ShouldBeGreaterThanOrEqualTo, 0)
				So(h, ShouldBeLessThan, 1)
			}
		})
	})

	Convey("Given stops at hue 0.9 and 0.1 the path is mirrored", t, func() {
		colors := []hsv.Color{hsv.New(0.9, 1, 1), hsv.New(0.1, 1, 1)}
		So(Sample(colors, 0.25).Hue, ShouldAlmostEqual, 0.95, eps)
	})
}

func TestFullSpectrum(t *testing.T) {
	Convey("Given stops at exactly hue 0 and 1", t, func() {
		colors := []hsv.Color{hsv.New(0, 1, 1), hsv.New(1, 1, 1)}

		Convey("Sampling sweeps monotonically from 0 towards 1", func() {
			prev := -1.0
			for i := 0; i < 100; i++ {
				tt := float64(i) / 100
				h := Sample(colors, tt).Hue
				So(h, ShouldBeGreaterThan, prev)
				So(h, ShouldAlmostEqual, tt, eps)
				prev = h
			}
		})
	})

	Convey("Given stops at exactly hue 1 and 0", t, func() {
		colors := []hsv.Color{hsv.New(1, 1, 1), hsv.New(0, 1, 1)}

		Convey("Sampling sweeps downwards", func() {
			So(Sample(colors, 0.25).Hue, ShouldAlmostEqual, 0.75, eps)
			So(Sample(colors, 0.75).Hue, ShouldAlmostEqual, 0.25, eps)
		})
	})
}

func TestSectorClamp(t *testing.T) {
	Convey("Positions just below 1 stay in the last sector", t, func() {
		colors := []hsv.Color{hsv.New(0, 0, 0), hsv.New(0, 0, 0.5), hsv.New(0, 0, 1)}
		So(func() { Sample(colors, math.Nextafter(1, 0)) }, ShouldNotPanic)
		So(Sample(colors, math.Nextafter(1, 0)).Value, ShouldAlmostEqual, 1, 1e-9)
	})
}

func TestSampler(t *testing.T) {
	Convey("Of wraps a palette as a Sampler", t, func() {
		var s Sampler = Of(palette.New("p", hsv.New(0, 0, 0), hsv.New(0, 0, 1)))
		So(s.At(0.5).Value, ShouldAlmostEqual, 0.5)
	})
}
