package where

import (
	"path/filepath"
	"testing"

	"github.com/ledpal/ledpal/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/ledpal")
			So(Config(), ShouldEqual, "/custom/ledpal")
			So(lo.Must(filesystem.API().IsDir("/custom/ledpal")), ShouldBeTrue)
		})

		Convey("Patterns()", func() {
			path := Patterns()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Store() and Queries() are files in the config directory", func() {
			So(filepath.Dir(Store()), ShouldEqual, Config())
			So(filepath.Dir(Queries()), ShouldEqual, Config())
			So(Store(), ShouldNotEqual, Queries())
		})

		Convey("Logs() and Temp() are created on demand", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(Temp())), ShouldBeTrue)
		})
	})
}
