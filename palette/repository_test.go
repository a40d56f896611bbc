package palette

import (
	"errors"
	"testing"
	"time"

	"github.com/ledpal/ledpal/hsv"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestRepository() *Repository {
	repo := NewRepository(NewMemoryStore(Defaults()))
	repo.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return repo
}

func TestGetAndList(t *testing.T) {
	Convey("Given a seeded repository", t, func() {
		repo := newTestRepository()

		Convey("Get returns known palettes", func() {
			p, err := repo.Get("0")
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "Spectrum")
			So(p.Default, ShouldBeTrue)
		})

		Convey("Get reports unknown keys", func() {
			_, err := repo.Get("nope")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("List keeps display order and is a copy", func() {
			list, err := repo.List()
			So(err, ShouldBeNil)
			So(list.Keys(), ShouldResemble, Defaults().Keys())

			p, _ := list.Get("1")
			p.Colors[0] = hsv.New(0.9, 0.9, 0.9)
			list.Set("1", p)

			again, _ := repo.Get("1")
			So(again.Colors[0], ShouldNotResemble, hsv.New(0.9, 0.9, 0.9))
		})
	})
}

func TestDefaultPalettesAreImmutable(t *testing.T) {
	Convey("Given a default palette", t, func() {
		repo := newTestRepository()
		before, _ := repo.List()

		Convey("Put is rejected and the store is unchanged", func() {
			err := repo.Put("0", New("Hacked", hsv.New(0, 0, 0), hsv.New(0, 0, 1)))
			So(errors.Is(err, ErrCannotModifyDefault), ShouldBeTrue)

			after, _ := repo.List()
			So(after.Keys(), ShouldResemble, before.Keys())
			p, _ := repo.Get("0")
			So(p.Name, ShouldEqual, "Spectrum")
		})

		Convey("Remove is rejected", func() {
			err := repo.Remove("0")
			So(errors.Is(err, ErrCannotModifyDefault), ShouldBeTrue)
			_, err = repo.Get("0")
			So(err, ShouldBeNil)
		})

		Convey("Stop edits are rejected", func() {
			So(errors.Is(repo.InsertColorAfter("0", 0), ErrCannotModifyDefault), ShouldBeTrue)
			So(errors.Is(repo.RemoveColorAt("1", 0), ErrCannotModifyDefault), ShouldBeTrue)
			So(errors.Is(repo.SetColorAt("0", 0, hsv.New(0.5, 1, 1)), ErrCannotModifyDefault), ShouldBeTrue)
			So(errors.Is(repo.Rename("0", "Mine"), ErrCannotModifyDefault), ShouldBeTrue)
		})
	})
}

func TestDuplicate(t *testing.T) {
	Convey("Given a default palette", t, func() {
		repo := newTestRepository()

		Convey("When duplicating it", func() {
			key, err := repo.Duplicate("1")
			So(err, ShouldBeNil)
			So(key, ShouldEqual, Key("1700000000000"))

			copied, err := repo.Get(key)
			So(err, ShouldBeNil)

			Convey("The copy is editable and named after the original", func() {
				So(copied.Name, ShouldEqual, "Fire (Copy)")
				So(copied.Default, ShouldBeFalse)
			})

			Convey("Mutating the copy never changes the original", func() {
				original, _ := repo.Get("1")
				So(repo.SetColorAt(key, 0, hsv.New(0.5, 0.5, 0.5)), ShouldBeNil)
				So(repo.InsertColorAfter(key, 1), ShouldBeNil)

				after, _ := repo.Get("1")
				So(after, ShouldResemble, original)
			})

			Convey("A second duplicate in the same millisecond gets a distinct key", func() {
				second, err := repo.Duplicate("1")
				So(err, ShouldBeNil)
				So(second, ShouldNotEqual, key)
				So(second, ShouldEqual, Key("1700000000001"))
			})
		})

		Convey("Duplicating an unknown key fails", func() {
			_, err := repo.Duplicate("missing")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestColorEdits(t *testing.T) {
	Convey("Given a two-color user palette", t, func() {
		repo := newTestRepository()
		So(repo.Put("mine", New("Mine", hsv.New(0, 1, 1), hsv.New(0.5, 1, 1))), ShouldBeNil)

		Convey("insertColorAfter(0) duplicates the first stop", func() {
			So(repo.InsertColorAfter("mine", 0), ShouldBeNil)
			p, _ := repo.Get("mine")
			So(p.Colors, ShouldResemble, []hsv.Color{hsv.New(0, 1, 1), hsv.New(0, 1, 1), hsv.New(0.5, 1, 1)})
		})

		Convey("insertColorAfter accepts the last index", func() {
			So(repo.InsertColorAfter("mine", 1), ShouldBeNil)
			p, _ := repo.Get("mine")
			So(p.Colors, ShouldResemble, []hsv.Color{hsv.New(0, 1, 1), hsv.New(0.5, 1, 1), hsv.New(0.5, 1, 1)})
		})

		Convey("insertColorAfter rejects invalid indices", func() {
			So(errors.Is(repo.InsertColorAfter("mine", 2), ErrIndexOutOfRange), ShouldBeTrue)
			So(errors.Is(repo.InsertColorAfter("mine", -1), ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("removeColorAt refuses to drop below two stops", func() {
			err := repo.RemoveColorAt("mine", 0)
			So(errors.Is(err, ErrMinimumColorCount), ShouldBeTrue)
			p, _ := repo.Get("mine")
			So(len(p.Colors), ShouldEqual, 2)
		})

		Convey("With a third stop", func() {
			So(repo.SetColorAt("mine", 1, hsv.New(0.25, 1, 1)), ShouldBeNil)
			So(repo.InsertColorAfter("mine", 1), ShouldBeNil)
			So(repo.SetColorAt("mine", 2, hsv.New(0.5, 1, 1)), ShouldBeNil)

			Convey("removeColorAt at a valid index yields two stops", func() {
				So(repo.RemoveColorAt("mine", 1), ShouldBeNil)
				p, _ := repo.Get("mine")
				So(p.Colors, ShouldResemble, []hsv.Color{hsv.New(0, 1, 1), hsv.New(0.5, 1, 1)})
			})

			Convey("removeColorAt rejects invalid indices", func() {
				So(errors.Is(repo.RemoveColorAt("mine", 3), ErrIndexOutOfRange), ShouldBeTrue)
			})
		})

		Convey("setColorAt clamps the committed colour", func() {
			So(repo.SetColorAt("mine", 0, hsv.New(0.1, 2, -1)), ShouldBeNil)
			p, _ := repo.Get("mine")
			So(p.Colors[0], ShouldResemble, hsv.New(0.1, 1, 0))
		})

		Convey("Rename trims and rejects empty names", func() {
			So(repo.Rename("mine", "  Dusk  "), ShouldBeNil)
			p, _ := repo.Get("mine")
			So(p.Name, ShouldEqual, "Dusk")
			So(errors.Is(repo.Rename("mine", "   "), ErrEmptyName), ShouldBeTrue)
		})

		Convey("Remove deletes it", func() {
			So(repo.Remove("mine"), ShouldBeNil)
			_, err := repo.Get("mine")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(errors.Is(repo.Remove("mine"), ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Put rejects palettes with fewer than two stops", t, func() {
		repo := newTestRepository()
		err := repo.Put("thin", New("Thin", hsv.New(0, 1, 1)))
		So(errors.Is(err, ErrMinimumColorCount), ShouldBeTrue)
	})
}

func TestSeed(t *testing.T) {
	Convey("Given an empty store", t, func() {
		repo := NewRepository(NewMemoryStore(nil))

		Convey("Seed installs the defaults once", func() {
			So(repo.Seed(), ShouldBeNil)
			list, _ := repo.List()
			So(list.Len(), ShouldEqual, Defaults().Len())

			So(repo.Remove("0"), ShouldNotBeNil)
			So(repo.Put("x", New("X", hsv.New(0, 0, 0), hsv.New(0, 0, 1))), ShouldBeNil)
			So(repo.Seed(), ShouldBeNil)
			list, _ = repo.List()
			So(list.Len(), ShouldEqual, Defaults().Len()+1)
		})
	})
}

func TestFindAndResolve(t *testing.T) {
	Convey("Given the defaults", t, func() {
		repo := newTestRepository()

		Convey("Find matches names fuzzily", func() {
			keys, err := repo.Find("sns")
			So(err, ShouldBeNil)
			So(keys, ShouldContain, Key("3"))
		})

		Convey("Resolve prefers exact keys, then names", func() {
			k, err := repo.Resolve("2")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, Key("2"))

			k, err = repo.Resolve("ocean")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, Key("2"))
		})

		Convey("Resolve reports misses", func() {
			_, err := repo.Resolve("zzzz")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}
