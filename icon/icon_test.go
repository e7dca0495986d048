package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/key"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for i := range icons {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			So(Get(Playing), ShouldBeEmpty)
		})

		Convey("Plain icons are single ASCII-safe glyphs", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Playing), ShouldEqual, ">")
		})
	})
}
