package util

import (
	"testing"

	"github.com/ledpal/ledpal/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
			So(SanitizeFilename("Cycle Hue 1D"), ShouldEqual, "Cycle_Hue_1D")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.txt"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(1.5, 0.0, 1.0), ShouldEqual, 1.0)
		So(Clamp(-0.25, 0.0, 1.0), ShouldEqual, 0.0)
		So(Clamp(0.5, 0.0, 1.0), ShouldEqual, 0.5)
	})
}

func TestTrail(t *testing.T) {
	Convey("Given an empty trail", t, func() {
		var tr Trail[string]

		Convey("Back reports nothing", func() {
			_, ok := tr.Back()
			So(ok, ShouldBeFalse)
		})

		Convey("Steps come back newest first", func() {
			tr.Visit("palettes")
			tr.Visit("colors")
			So(tr.Len(), ShouldEqual, 2)

			step, ok := tr.Back()
			So(ok, ShouldBeTrue)
			So(step, ShouldEqual, "colors")
			step, _ = tr.Back()
			So(step, ShouldEqual, "palettes")
			So(tr.Len(), ShouldEqual, 0)
		})

		Convey("Consecutive visits to one screen are kept once", func() {
			tr.Visit("palettes")
			tr.Visit("palettes")
			So(tr.Len(), ShouldEqual, 1)
		})

		Convey("The oldest steps fall off a full trail", func() {
			for i := 0; i < trailDepth+4; i++ {
				tr.Visit(string(rune('a' + i)))
			}
			So(tr.Len(), ShouldEqual, trailDepth)

			var last string
			for tr.Len() > 0 {
				last, _ = tr.Back()
			}
			So(last, ShouldEqual, "e")
		})

		Convey("Reset empties it", func() {
			tr.Visit("palettes")
			tr.Reset()
			So(tr.Len(), ShouldEqual, 0)
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Given the in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Files and directories are removed", func() {
			So(fs.WriteFile("/ledpal/store.json", []byte("{}"), 0644), ShouldBeNil)
			So(fs.WriteFile("/ledpal/logs/today.log", nil, 0644), ShouldBeNil)

			So(Delete("/ledpal/store.json"), ShouldBeNil)
			So(Delete("/ledpal/logs"), ShouldBeNil)

			exists, _ := fs.Exists("/ledpal/logs/today.log")
			So(exists, ShouldBeFalse)
		})

		Convey("Missing paths are ignored", func() {
			So(Delete("/nowhere"), ShouldBeNil)
		})
	})
}
