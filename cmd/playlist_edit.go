package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/color"
	"github.com/whisperdoll/aria-client/icon"
	"github.com/whisperdoll/aria-client/key"
	"github.com/whisperdoll/aria-client/playlist"
	"github.com/whisperdoll/aria-client/style"
	"github.com/whisperdoll/aria-client/util"
)

func init() {
	playlistCmd.AddCommand(playlistAddCmd)

	playlistAddCmd.Flags().StringP("title", "t", "", "Track title")
	playlistAddCmd.Flags().StringP("artist", "a", "", "Track artist")
	playlistAddCmd.Flags().StringP("album", "A", "", "Track album")
	playlistAddCmd.Flags().StringP("duration", "d", "0", "Track length, in seconds or as minutes:seconds")
	playlistAddCmd.Flags().Int("at", 0, "Insert at this position instead of appending")
	playlistAddCmd.Flags().Bool("sorted", false, "Insert where the configured sort key puts the track")
	playlistAddCmd.Flags().Bool("random", false, "Insert at a random position")
	playlistAddCmd.MarkFlagsMutuallyExclusive("at", "sorted", "random")

	playlistAddCmd.Flags().Bool("allow-duplicates", false, "Add the track even if the playlist already has it")
	lo.Must0(viper.BindPFlag(key.PlaylistAllowDuplicates, playlistAddCmd.Flags().Lookup("allow-duplicates")))
}

var playlistAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a track",
	Long:  "Add a track. The id is usually a file path or URL; without --title the file name is shown instead.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		seconds, err := util.ParseSeconds(lo.Must(cmd.Flags().GetString("duration")))
		handleErr(err)

		track := playlist.Track{
			ID:       args[0],
			Title:    lo.Must(cmd.Flags().GetString("title")),
			Artist:   lo.Must(cmd.Flags().GetString("artist")),
			Album:    lo.Must(cmd.Flags().GetString("album")),
			Duration: seconds,
		}

		opts := addOptions{
			Duplicates: viper.GetBool(key.PlaylistAllowDuplicates),
		}
		switch {
		case lo.Must(cmd.Flags().GetBool("sorted")):
			opts.Placement, opts.SortBy = inSortOrder, configuredSortKey()
		case lo.Must(cmd.Flags().GetBool("random")):
			opts.Placement = atRandom
		case cmd.Flags().Changed("at"):
			opts.Placement, opts.At = atIndex, lo.Must(cmd.Flags().GetInt("at"))-1
		}

		p := selected(true)

		index, added := addTrack(p, track, opts)
		if !added {
			fmt.Printf("%s %s is already in %s at position %d\n", icon.Get(icon.Track), track, p.Name, index+1)
			return
		}

		save(p)
		success("added %s to %s at position %d", style.Bold(track.String()), style.Fg(color.Purple)(p.Name), index+1)
	},
}

type placement int

const (
	atEnd placement = iota
	atIndex
	inSortOrder
	atRandom
)

type addOptions struct {
	Placement placement
	// At is the index used with atIndex.
	At     int
	SortBy playlist.SortKey
	// Rand is used with atRandom; nil means the global generator.
	Rand       util.Source
	Duplicates bool
}

// addTrack inserts track into p and returns its index. Unless duplicates are allowed
// a track p already holds is left where it is, and added is false.
func addTrack(p *playlist.Playlist, track playlist.Track, opts addOptions) (index int, added bool) {
	if !opts.Duplicates {
		if opts.Placement == atEnd {
			res := p.Add(track)
			return res.Index, !res.Existed
		}
		if i := util.IndexOf(p.Tracks, track); i != -1 {
			return i, false
		}
	}

	switch opts.Placement {
	case atIndex:
		return p.AddAt(track, opts.At).Index, true
	case inSortOrder:
		return p.AddSorted(track, opts.SortBy).Index, true
	case atRandom:
		return p.AddRandom(track, opts.Rand).Index, true
	default:
		return p.AddAt(track, p.Len()).Index, true
	}
}

func init() {
	playlistCmd.AddCommand(playlistRmCmd)
	playlistRmCmd.Flags().String("id", "", "Remove the track with this id instead of by position")
	playlistRmCmd.Flags().Bool("all", false, "With --id, remove every copy of the track")
}

var playlistRmCmd = &cobra.Command{
	Use:   "rm [position]",
	Short: "Remove a track",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)
		id := lo.Must(cmd.Flags().GetString("id"))

		if id == "" {
			if len(args) == 0 {
				handleErr(cmd.Help())
				return
			}

			removed := p.RemoveAt(position(p, args[0]))
			save(p)
			success("removed %s", style.Bold(removed.Item.String()))
			return
		}

		track, err := trackByID(p, id)
		handleErr(err)

		count := 1
		if lo.Must(cmd.Flags().GetBool("all")) {
			count = len(p.RemoveAll(track).Indexes)
		} else {
			p.Remove(track)
		}

		save(p)
		success("removed %s of %s", util.Quantify(count, "copy", "copies"), style.Bold(track.String()))
	},
}

func init() {
	playlistCmd.AddCommand(playlistSortCmd)
	playlistSortCmd.ValidArgsFunction = completionSortKeys
}

var playlistSortCmd = &cobra.Command{
	Use:   "sort [key]",
	Short: "Sort the tracks, by playlist.sort_by unless a key is given",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		by := configuredSortKey()
		if len(args) == 1 {
			var err error
			by, err = playlist.ParseSortKey(args[0])
			handleErr(err)
		}

		p := selected(false)
		p.Sort(by)
		save(p)
		success("sorted %s by %s", style.Fg(color.Purple)(p.Name), by)
	},
}

func init() {
	playlistCmd.AddCommand(playlistShuffleCmd)
	playlistShuffleCmd.Flags().BoolP("keep-current", "k", false, "Move the playing track to the front")
	lo.Must0(viper.BindPFlag(key.PlaylistShuffleKeepCurrent, playlistShuffleCmd.Flags().Lookup("keep-current")))
}

var playlistShuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Put the tracks in random order",
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)
		p.Shuffle(nil, viper.GetBool(key.PlaylistShuffleKeepCurrent))
		save(p)
		success("%s shuffled %s", icon.Get(icon.Shuffle), style.Fg(color.Purple)(p.Name))
	},
}

func init() {
	playlistCmd.AddCommand(playlistSwapCmd)
	playlistSwapCmd.Flags().StringArray("id", nil, "Swap the tracks with these ids instead of positions; give it twice")
}

var playlistSwapCmd = &cobra.Command{
	Use:   "swap <position> <position>",
	Short: "Exchange two tracks",
	Long:  "Exchange two tracks, given by position or with --id twice.",
	Example: `  aria playlist swap 1 4
  aria playlist swap --id music/intro.flac --id music/coda.flac`,
	Args: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("id") {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)

		if ids := lo.Must(cmd.Flags().GetStringArray("id")); len(ids) > 0 {
			a, b, err := swapByID(p, ids)
			handleErr(err)
			save(p)
			success("swapped %s and %s", style.Bold(a.String()), style.Bold(b.String()))
			return
		}

		i, j := position(p, args[0]), position(p, args[1])

		handleErr(p.Swap(i, j))
		save(p)
		success("swapped %s and %s", style.Bold(p.Label(j)), style.Bold(p.Label(i)))
	},
}

// swapByID exchanges the first tracks with the two given ids.
func swapByID(p *playlist.Playlist, ids []string) (a, b playlist.Track, err error) {
	if len(ids) != 2 {
		return a, b, fmt.Errorf("swap needs exactly two ids, got %d", len(ids))
	}

	if a, err = trackByID(p, ids[0]); err != nil {
		return a, b, err
	}
	if b, err = trackByID(p, ids[1]); err != nil {
		return a, b, err
	}

	if !p.SwapTracks(a, b) {
		return a, b, fmt.Errorf("cannot swap %s and %s", a, b)
	}
	return a, b, nil
}

func init() {
	playlistCmd.AddCommand(playlistMoveCmd)
}

var playlistMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a track to another position",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)
		from, to := position(p, args[0]), position(p, args[1])

		handleErr(p.Move(from, to))
		save(p)
		success("moved %s to position %d", style.Bold(p.Label(to)), to+1)
	},
}
