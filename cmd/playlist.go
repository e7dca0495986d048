package cmd

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/key"
	"github.com/whisperdoll/aria-client/playlist"
	"github.com/whisperdoll/aria-client/util"
)

func init() {
	rootCmd.AddCommand(playlistCmd)
}

var playlistCmd = &cobra.Command{
	Use:     "playlist",
	Aliases: []string{"pl"},
	Short:   "Create, edit and play playlists",
	Long: `Create, edit and play playlists.
Commands act on the playlist selected with --playlist, or the one set by playlist.default.
Track positions are counted from 1.`,
}

func completionPlaylistNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names, err := playlist.Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func completionSortKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(playlist.SortKeys(), func(k playlist.SortKey, _ int) string {
		return string(k)
	}), cobra.ShellCompDirectiveNoFileComp
}

// selected loads the playlist the command operates on. A missing playlist is an error
// unless create is set, in which case a new one is returned that follows the configured defaults.
func selected(create bool) *playlist.Playlist {
	name := viper.GetString(key.PlaylistDefault)

	if !create {
		p, err := playlist.Load(name)
		handleErr(err)
		return p
	}

	p, created, err := playlist.LoadOrNew(name)
	handleErr(err)
	if created {
		p.Repeat = viper.GetBool(key.PlaylistRepeat)
	}
	return p
}

// trackByID returns the first track of p with the given id.
func trackByID(p *playlist.Playlist, id string) (playlist.Track, error) {
	track, ok := lo.Find(p.Tracks, func(t playlist.Track) bool {
		return t.ID == id
	})
	if !ok {
		return track, fmt.Errorf("no track with id %q in %s", id, p.Name)
	}
	return track, nil
}

func save(p *playlist.Playlist) {
	handleErr(playlist.Save(p))
}

func configuredSortKey() playlist.SortKey {
	k, err := playlist.ParseSortKey(viper.GetString(key.PlaylistSortBy))
	handleErr(err)
	return k
}

// position converts a 1-based position argument into an index into p.
func position(p *playlist.Playlist, arg string) int {
	n, err := strconv.Atoi(arg)
	if err != nil {
		handleErr(fmt.Errorf("invalid position %q", arg))
	}

	if n < 1 || n > p.Len() {
		handleErr(fmt.Errorf("position %d: %w (playlist has %s)", n, util.ErrIndexOutOfRange, util.Quantify(p.Len(), "track", "tracks")))
	}

	return n - 1
}
