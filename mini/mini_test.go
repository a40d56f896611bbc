package mini

import (
	"bytes"
	"testing"

	"github.com/ledpal/ledpal/hsv"
	"github.com/ledpal/ledpal/palette"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPicker(t *testing.T) {
	Convey("Given a mini editor over a user palette", t, func() {
		repo := palette.NewRepository(palette.NewMemoryStore(palette.Defaults()))
		So(repo.Put("user", palette.New("user", hsv.New(0, 1, 1), hsv.New(0.5, 1, 1))), ShouldBeNil)

		var out bytes.Buffer
		m := newMini(&Options{Repository: repo, Out: &out})
		m.renderer.Width = 8

		So(m.session.Select("user"), ShouldBeNil)
		m.session.Flush()

		Convey("Selecting draws the preview", func() {
			So(out.String(), ShouldNotBeEmpty)
		})

		Convey("Each stop has a prompt handle", func() {
			c, ok := m.picker.initial(1)
			So(ok, ShouldBeTrue)
			So(c, ShouldResemble, hsv.New(0.5, 1, 1))
		})

		Convey("Committing through a handle updates the palette", func() {
			So(m.picker.commit(0, hsv.New(0.25, 1, 1)), ShouldBeTrue)
			p, _ := repo.Get("user")
			So(p.Colors[0], ShouldResemble, hsv.New(0.25, 1, 1))
		})

		Convey("Handles follow structural edits after a flush", func() {
			So(m.session.InsertColorAfter(1), ShouldBeNil)
			m.session.Flush()
			c, ok := m.picker.initial(2)
			So(ok, ShouldBeTrue)
			So(c, ShouldResemble, hsv.New(0.5, 1, 1))
		})

		Convey("Default palettes cannot be committed to", func() {
			So(m.session.Select("0"), ShouldBeNil)
			m.session.Flush()
			So(m.picker.commit(0, hsv.New(0.25, 1, 1)), ShouldBeFalse)
		})
	})
}

func TestStateHistory(t *testing.T) {
	Convey("Given a mini editor", t, func() {
		m := newMini(&Options{Repository: palette.NewRepository(palette.NewMemoryStore(nil))})
		m.state = paletteSelectState

		Convey("Going forward and back restores the state", func() {
			m.newState(actionSelectState)
			m.newState(stopSelectState)
			m.previousState()
			So(m.state, ShouldEqual, actionSelectState)
		})

		Convey("Prompt states are skipped on the way back", func() {
			m.newState(actionSelectState)
			m.newState(renameState)
			m.newState(stopSelectState)
			m.previousState()
			So(m.state, ShouldEqual, actionSelectState)
		})
	})
}
