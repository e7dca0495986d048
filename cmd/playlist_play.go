package cmd

import (
	"fmt"
	"os"

	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/whisperdoll/aria-client/icon"
	"github.com/whisperdoll/aria-client/playlist"
	"github.com/whisperdoll/aria-client/style"
	"github.com/whisperdoll/aria-client/tui"
	"github.com/whisperdoll/aria-client/util"
)

func nowPlaying(p *playlist.Playlist, track mo.Option[playlist.Track]) {
	if track.IsAbsent() {
		fmt.Println(style.Faint("End of " + p.Name + ", nothing left to play"))
		return
	}

	save(p)
	fmt.Printf("%s %s\n", icon.Get(icon.Playing), style.Current.Render(p.Label(p.Current)))
}

func init() {
	playlistCmd.AddCommand(playlistNextCmd)
}

var playlistNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance to the next track",
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)
		nowPlaying(p, p.Next())
	},
}

func init() {
	playlistCmd.AddCommand(playlistPrevCmd)
}

var playlistPrevCmd = &cobra.Command{
	Use:     "prev",
	Aliases: []string{"previous"},
	Short:   "Go back to the previous track",
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)
		nowPlaying(p, p.Previous())
	},
}

func init() {
	playlistCmd.AddCommand(playlistJumpCmd)
}

var playlistJumpCmd = &cobra.Command{
	Use:   "jump <position>",
	Short: "Play the track at a position",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)
		handleErr(p.Jump(position(p, args[0])))
		nowPlaying(p, p.CurrentTrack())
	},
}

func init() {
	playlistCmd.AddCommand(playlistFindCmd)
	playlistFindCmd.SetOut(os.Stdout)
}

var playlistFindCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy search the tracks of a playlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)

		matches := p.Find(args[0])
		if len(matches) == 0 {
			handleErr(fmt.Errorf("nothing in %s matches %q", p.Name, args[0]))
		}

		for _, m := range matches {
			cmd.Println(trackLine(p, m.Index))
		}
	},
}

func init() {
	playlistCmd.AddCommand(playlistBrowseCmd)
}

var playlistBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a playlist interactively",
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(true)
		handleErr(tui.Run(p))
	},
}

func init() {
	rootCmd.AddCommand(durationCmd)
	durationCmd.SetOut(os.Stdout)
}

var durationCmd = &cobra.Command{
	Use:   "duration <seconds|m:ss>...",
	Short: "Format track lengths and their total",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var total float64

		for _, arg := range args {
			seconds, err := util.ParseSeconds(arg)
			handleErr(err)

			total += seconds
			cmd.Println(util.FormatDuration(seconds))
		}

		if len(args) > 1 {
			cmd.Println(style.Bold(util.FormatDuration(total)))
		}
	},
}
