package where

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/whisperdoll/aria-client/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestWhere(t *testing.T) {
	Convey("Given a custom config path", t, func() {
		custom := filepath.Join(os.TempDir(), "aria-where-test")
		t.Setenv(EnvConfigPath, custom)

		Convey("Config resolves to it and creates it", func() {
			So(Config(), ShouldEqual, custom)
			exists, err := filesystem.API().DirExists(custom)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Derived locations live beneath it", func() {
			So(Logs(), ShouldEqual, filepath.Join(custom, "logs"))
			So(Playlists(), ShouldEqual, filepath.Join(custom, "playlists.json"))
		})
	})

	Convey("Temp and Cache end with the application name", t, func() {
		So(filepath.Base(Temp()), ShouldEqual, "aria")
		So(filepath.Base(Cache()), ShouldEqual, "aria")
		So(filepath.Dir(Queries()), ShouldEqual, Cache())
	})
}
