package color

import (
	imgcolor "image/color"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFromRGBA(t *testing.T) {
	Convey("FromRGBA", t, func() {
		So(string(FromRGBA(imgcolor.RGBA{R: 255, G: 128, B: 0, A: 255})), ShouldEqual, "#ff8000")
		So(string(FromRGBA(imgcolor.RGBA{A: 255})), ShouldEqual, "#000000")
	})
}
