package hsv

import (
	"encoding/json"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("Given a fully saturated bright red", t, func() {
		r := New(0, 1, 1).Render()

		Convey("It should be a pure mid-lightness colour", func() {
			So(r.Hue, ShouldEqual, 0)
			So(r.Saturation, ShouldAlmostEqual, 100)
			So(r.Lightness, ShouldAlmostEqual, 50)
			So(r.CSS(), ShouldEqual, "hsl(0, 100%, 50%)")
		})
	})

	Convey("Given a half hue", t, func() {
		So(New(0.5, 1, 1).Render().Hue, ShouldAlmostEqual, 180)
	})

	Convey("Given the lightness poles", t, func() {
		Convey("Black has no saturation and no NaN", func() {
			r := New(0.3, 1, 0).Render()
			So(r.Lightness, ShouldEqual, 0)
			So(r.Saturation, ShouldEqual, 0)
			So(math.IsNaN(r.Saturation), ShouldBeFalse)
		})

		Convey("White has no saturation", func() {
			r := New(0.3, 0, 1).Render()
			So(r.Lightness, ShouldAlmostEqual, 100)
			So(r.Saturation, ShouldEqual, 0)
		})
	})

	Convey("Given a muted colour above half lightness", t, func() {
		// s=0.5 v=1 -> l=0.75, s2 = 0.5 / 0.5 = 1
		r := New(0, 0.5, 1).Render()
		So(r.Lightness, ShouldAlmostEqual, 75)
		So(r.Saturation, ShouldAlmostEqual, 100)
	})

	Convey("Given out of range channels", t, func() {
		r := New(0, 2, -1).Render()
		So(r.Lightness, ShouldEqual, 0)
		So(r.Saturation, ShouldEqual, 0)
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(New(1, 0.5, 0.5).Clamp().Hue, ShouldEqual, 1)
		So(New(1.25, 0.5, 0.5).Clamp().Hue, ShouldAlmostEqual, 0.25)
		So(New(-0.25, 0.5, 0.5).Clamp().Hue, ShouldAlmostEqual, 0.75)
		So(New(0, 1.5, -0.5).Clamp(), ShouldResemble, New(0, 1, 0))
	})
}

func TestRGBA(t *testing.T) {
	Convey("RGBA", t, func() {
		Convey("Stops and their render form agree", func() {
			for _, c := range []Color{New(0, 1, 1), New(0.33, 0.8, 0.6), New(0.66, 0.2, 0.9), New(1, 1, 1)} {
				a, b := c.RGBA(), c.Render().RGBA()
				So(math.Abs(float64(a.R)-float64(b.R)), ShouldBeLessThanOrEqualTo, 1)
				So(math.Abs(float64(a.G)-float64(b.G)), ShouldBeLessThanOrEqualTo, 1)
				So(math.Abs(float64(a.B)-float64(b.B)), ShouldBeLessThanOrEqualTo, 1)
			}
		})

		Convey("Pure red", func() {
			So(New(0, 1, 1).Hex(), ShouldEqual, "#ff0000")
		})
	})
}

func TestJSON(t *testing.T) {
	Convey("Given a colour", t, func() {
		c := New(0.5, 1, 0.25)

		Convey("It should encode as a triple", func() {
			data, err := json.Marshal(c)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "[0.5,1,0.25]")
		})

		Convey("It should reject a pair", func() {
			var out Color
			So(json.Unmarshal([]byte("[0.5,1]"), &out), ShouldNotBeNil)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Unit channels", func() {
			c, err := Parse("0.5, 1, 0.25")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, New(0.5, 1, 0.25))
		})

		Convey("Picker notation round-trips through String", func() {
			c, err := Parse("hsv(180, 50%, 100%)")
			So(err, ShouldBeNil)
			So(c.ApproxEqual(New(0.5, 0.5, 1), 1e-9), ShouldBeTrue)
			So(c.String(), ShouldEqual, "hsv(180, 50%, 100%)")
		})

		Convey("Hex", func() {
			c, err := Parse("#00ff00")
			So(err, ShouldBeNil)
			So(c.ApproxEqual(New(1.0/3, 1, 1), 1e-9), ShouldBeTrue)
		})

		Convey("Garbage", func() {
			_, err := Parse("teal-ish")
			So(err, ShouldNotBeNil)
			_, err = Parse("")
			So(err, ShouldNotBeNil)
		})
	})
}
