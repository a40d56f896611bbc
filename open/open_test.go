package open

import (
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a file to open", t, func() {
		cmd, ok := command("/tmp/strip.png", "")
		if !ok {
			SkipSo(runtime.GOOS, ShouldBeIn, "windows", "darwin", "linux")
			return
		}

		Convey("The default handler receives the path last", func() {
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "/tmp/strip.png")
		})

		Convey("A named application is used when given", func() {
			cmd, _ := command("/tmp/strip.png", "gimp")
			So(cmd.Args, ShouldContain, "gimp")
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "/tmp/strip.png")
		})
	})
}
