package filesystem

import (
	"io"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept any afero backend", func() {
			Use(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(API().Name(), ShouldEqual, "ReadOnlyFilter")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the in-memory backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		Convey("GacheFs writes through to it", func() {
			So(fs.MkdirAll("/data", os.ModePerm), ShouldBeNil)

			f, err := fs.OpenFile("/data/x.json", os.O_CREATE|os.O_RDWR, 0o644)
			So(err, ShouldBeNil)
			_, err = io.WriteString(f, `{"ok":true}`)
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			content, err := API().ReadFile("/data/x.json")
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, `{"ok":true}`)
		})
	})
}
