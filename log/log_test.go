package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(dayLayout) + extension
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("WithFields should still return a usable entry", func() {
			entry := WithFields(logrus.Fields{"palette": "0"})
			So(entry, ShouldNotBeNil)
			So(func() { entry.Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("It should create today's log file and fall back to info level", func() {
			exists := lo.Must(filesystem.API().Exists(filepath.Join(where.Logs(), day(0))))
			So(exists, ShouldBeTrue)
			So(Level(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Entries carry the version", func() {
			So(WithFields(logrus.Fields{"palette": "1"}).Data, ShouldContainKey, "version")
		})
	})
}

func TestPrune(t *testing.T) {
	Convey("Given a logs directory with old and recent files", t, func() {
		dir := where.Logs()
		for _, name := range []string{day(-30), day(-3), day(0), "notes.log", "other.txt"} {
			lo.Must0(filesystem.API().WriteFile(filepath.Join(dir, name), nil, 0644))
		}

		So(prune(dir, time.Now().AddDate(0, 0, -7)), ShouldBeNil)

		Convey("Only day files past the cutoff are removed", func() {
			exists := func(name string) bool {
				return lo.Must(filesystem.API().Exists(filepath.Join(dir, name)))
			}
			So(exists(day(-30)), ShouldBeFalse)
			So(exists(day(-3)), ShouldBeTrue)
			So(exists(day(0)), ShouldBeTrue)
			So(exists("notes.log"), ShouldBeTrue)
			So(exists("other.txt"), ShouldBeTrue)
		})
	})
}
