package inline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func newRepository() *palette.Repository {
	repo := palette.NewRepository(palette.NewMemoryStore(palette.Defaults()))
	_ = repo.Put("red", palette.New("Reds", hsv.New(0, 1, 1), hsv.New(0, 1, 0.5)))
	return repo
}

func TestRun(t *testing.T) {
	Convey("Given a repository", t, func() {
		var buf bytes.Buffer
		options := &Options{
			Out:        &buf,
			Repository: newRepository(),
			Width:      4,
		}

		Convey("An empty query with json prints every palette", func() {
			options.Json = true
			So(Run(options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, palette.Defaults().Len()+1)
			So(output.Result[0].Hex, ShouldHaveLength, 4)
		})

		Convey("A query with a picker prints one line of hex colours", func() {
			options.Query = "reds"
			picker, err := ParsePicker("first", "")
			So(err, ShouldBeNil)
			options.Picker = mo.Some(picker)

			So(Run(options), ShouldBeNil)
			line := strings.TrimSpace(buf.String())
			So(line, ShouldStartWith, "red\tReds\t#ff0000")
			So(strings.Fields(line), ShouldHaveLength, 2+4)
		})

		Convey("A picker without a match prints nothing", func() {
			picker, _ := ParsePicker("exact", "nope")
			options.Picker = mo.Some(picker)
			options.Json = true

			So(Run(options), ShouldBeNil)
			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldBeEmpty)
		})

		Convey("A pattern replaces the plain gradient", func() {
			options.Query = "reds"
			options.Pattern = mo.Some(0)
			options.Format = "css"

			So(Run(options), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "hsl(0, 100%, 50%)")
		})
	})
}

func TestParsePicker(t *testing.T) {
	Convey("Given some keys", t, func() {
		keys := []palette.Key{"a", "b", "c"}
		palettes := palette.NewCollection()
		palettes.Set("b", palette.New("Bee", hsv.New(0, 0, 0), hsv.New(0, 0, 1)))

		Convey("index clamps to the last key", func() {
			picker, err := ParsePicker("index", "10")
			So(err, ShouldBeNil)
			So(picker(keys, palettes).MustGet(), ShouldEqual, palette.Key("c"))
		})

		Convey("exact matches by name", func() {
			picker, _ := ParsePicker("exact", "Bee")
			So(picker(keys, palettes).MustGet(), ShouldEqual, palette.Key("b"))
		})

		Convey("last picks the last key", func() {
			picker, _ := ParsePicker("last", "")
			So(picker(keys, palettes).MustGet(), ShouldEqual, palette.Key("c"))
		})

		Convey("Unknown kinds and bad indexes are rejected", func() {
			_, err := ParsePicker("random", "")
			So(err, ShouldNotBeNil)
			_, err = ParsePicker("index", "x")
			So(err, ShouldNotBeNil)
		})
	})
}
