package config

import (
	"errors"
	"sort"
	"testing"

	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.PreviewWidth), ShouldEqual, 64)
			So(viper.GetString(key.PaletteActive), ShouldEqual, "0")
		})

		Convey("Unknown keys in the config file are reported", func() {
			path := Path()
			So(filesystem.API().WriteFile(path, []byte("[preview]\nwidth = 32\nwdith = 8\n"), 0644), ShouldBeNil)
			defer filesystem.API().Remove(path)

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.PreviewWidth), ShouldEqual, 32)
			So(Unrecognized(), ShouldResemble, []string{"preview.wdith"})

			viper.Set(key.PreviewWidth, 64)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("preview.width")
			So(result, ShouldEqual, "preview_width")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PreviewWidth]

		Convey("Env should be prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "LEDPAL_PREVIEW_WIDTH")
		})

		Convey("typeName should describe the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
			step := Default[key.EditorStep]
			So(step.typeName(), ShouldEqual, "float64")
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Known keys return their field", func() {
			field, err := Lookup(key.PreviewWidth)
			So(err, ShouldBeNil)
			So(field.Value, ShouldEqual, 64)
		})

		Convey("Unknown keys suggest the closest one", func() {
			_, err := Lookup("preview.widht")
			So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, key.PreviewWidth)
		})

		Convey("Keys are sorted", func() {
			keys := Keys()
			So(sort.StringsAreSorted(keys), ShouldBeTrue)
			So(keys, ShouldHaveLength, len(Default))
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse converts to the default's type", t, func() {
		width := Default[key.PreviewWidth]
		v, err := width.Parse([]string{"128"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 128)

		_, err = width.Parse([]string{"wide"})
		So(err, ShouldNotBeNil)

		step := Default[key.EditorStep]
		v, err = step.Parse([]string{"0.05"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 0.05)

		libs := Default[key.PatternLibs]
		v, err = libs.Parse([]string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		active := Default[key.PaletteActive]
		v, err = active.Parse([]string{"1700000000000"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "1700000000000")

		_, err = active.Parse(nil)
		So(errors.Is(err, ErrInvalidValue), ShouldBeTrue)

		Convey("Restricted keys only accept their options", func() {
			level := Default[key.LogsLevel]
			So(level.Options, ShouldContain, "debug")

			v, err := level.Parse([]string{"debug"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "debug")

			_, err = level.Parse([]string{"loud"})
			So(errors.Is(err, ErrInvalidValue), ShouldBeTrue)

			icons := Default[key.IconsVariant]
			_, err = icons.Parse([]string{"nerd"})
			So(err, ShouldBeNil)
		})
	})
}

func TestPretty(t *testing.T) {
	Convey("Pretty describes a field", t, func() {
		level := Default[key.LogsLevel]
		out := level.Pretty()
		So(out, ShouldContainSubstring, key.LogsLevel)
		So(out, ShouldContainSubstring, "LEDPAL_LOGS_LEVEL")
		So(out, ShouldContainSubstring, "trace")

		width := Default[key.PreviewWidth]
		So(width.Pretty(), ShouldNotContainSubstring, "Options:")
	})
}

func TestRestore(t *testing.T) {
	Convey("Restore puts defaults back", t, func() {
		viper.Set(key.PreviewWidth, 12)
		viper.Set(key.TUIItemSpacing, 4)

		So(Restore(key.PreviewWidth), ShouldBeNil)
		So(viper.GetInt(key.PreviewWidth), ShouldEqual, 64)
		So(viper.GetInt(key.TUIItemSpacing), ShouldEqual, 4)

		So(Restore(), ShouldBeNil)
		So(viper.GetInt(key.TUIItemSpacing), ShouldEqual, 1)

		So(errors.Is(Restore("nope"), ErrUnknownKey), ShouldBeTrue)
	})
}

func TestWrite(t *testing.T) {
	Convey("Write creates the config file on first use", t, func() {
		_ = filesystem.API().Remove(Path())
		So(Setup(), ShouldBeNil)

		viper.Set(key.PreviewWidth, 48)
		So(Write(), ShouldBeNil)

		data, err := filesystem.API().ReadFile(Path())
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "width = 48")

		Convey("Later writes replace it", func() {
			viper.Set(key.PreviewWidth, 64)
			So(Write(), ShouldBeNil)

			data, err := filesystem.API().ReadFile(Path())
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "width = 64")
		})

		Reset(func() {
			viper.Set(key.PreviewWidth, 64)
			_ = filesystem.API().Remove(Path())
		})
	})
}
