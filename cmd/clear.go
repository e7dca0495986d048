package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/whisperdoll/aria-client/icon"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"temp directory", "temp", mo.Some("t"), where.Temp},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
	{"search history", "queries", mo.Some("q"), where.Queries},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := "clear " + target.name
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and temporary files",
	Long:  "Remove cached and temporary files. Saved playlists are never touched, use playlist delete for those.",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			cleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(target.location())
			erase()

			if err != nil && !util.IsNotExist(err) {
				handleErr(err)
			}
			success("%s cleared", util.Capitalize(target.name))
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}
