package palette

import (
	"encoding/json"
	"testing"

	"github.com/ledpal/ledpal/hsv"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectionJSON(t *testing.T) {
	Convey("Given a collection with non-sorted keys", t, func() {
		c := NewCollection()
		c.Set("b", New("B", hsv.New(0, 1, 1), hsv.New(1, 1, 1)))
		c.Set("a", New("A", hsv.New(0.5, 1, 1), hsv.New(0.6, 1, 1)))

		Convey("It should persist as the plain record format", func() {
			data, err := json.Marshal(c)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual,
				`{"b":{"name":"B","default":false,"colors":[[0,1,1],[1,1,1]]},"a":{"name":"A","default":false,"colors":[[0.5,1,1],[0.6,1,1]]}}`)

			Convey("And decode in the same order", func() {
				decoded := NewCollection()
				So(json.Unmarshal(data, decoded), ShouldBeNil)
				So(decoded.Keys(), ShouldResemble, []Key{"b", "a"})
				p, ok := decoded.Get("a")
				So(ok, ShouldBeTrue)
				So(p.Colors[1], ShouldResemble, hsv.New(0.6, 1, 1))
			})
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Clone never aliases colours", t, func() {
		p := New("P", hsv.New(0, 1, 1), hsv.New(1, 1, 1))
		q := p.Clone()
		q.Colors[0].Hue = 0.5
		So(p.Colors[0].Hue, ShouldEqual, 0)
	})
}
