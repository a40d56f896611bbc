package query

import (
	"testing"

	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchSuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		Convey("When remembering queries", func() {
			So(Remember("sunset", 1), ShouldBeNil)
			So(Remember("  Sunrise ", 10), ShouldBeNil)
			So(Remember("   ", 5), ShouldBeNil)

			Convey("Suggestions are sorted by rank", func() {
				s := SuggestMany("sun")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
				So(s[0], ShouldEqual, "sunrise")
				So(Suggest("sun").MustGet(), ShouldEqual, "sunrise")
			})

			Convey("Remembering again raises the rank", func() {
				_ = SuggestMany("sun")
				So(Remember("sunset", 100), ShouldBeNil)
				So(SuggestMany("sun")[0], ShouldEqual, "sunset")
			})

			Convey("Blank queries are not remembered", func() {
				So(SuggestMany(""), ShouldNotContain, "")
			})
		})

		Convey("Suggestions can be switched off", func() {
			viper.Set(key.SearchSuggestions, false)
			defer viper.Set(key.SearchSuggestions, true)

			So(SuggestMany("sun"), ShouldBeEmpty)
			So(Suggest("sun").IsAbsent(), ShouldBeTrue)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  SUNSET  "), ShouldEqual, "sunset")
		})
	})
}
