package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/invopop/jsonschema"
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
	playlistCmd.AddCommand(playlistNewCmd)
	playlistNewCmd.Flags().BoolP("repeat", "r", false, "Wrap around at the ends of the playlist")
	lo.Must0(viper.BindPFlag(key.PlaylistRepeat, playlistNewCmd.Flags().Lookup("repeat")))
}

var playlistNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an empty playlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		names, err := playlist.Names()
		handleErr(err)

		if lo.Contains(names, args[0]) {
			handleErr(fmt.Errorf("playlist %q already exists", args[0]))
		}

		p := playlist.New(args[0])
		p.Repeat = viper.GetBool(key.PlaylistRepeat)
		save(p)
		success("created playlist %s", style.Fg(color.Purple)(p.Name))
	},
}

func init() {
	playlistCmd.AddCommand(playlistLsCmd)
	playlistLsCmd.Flags().BoolP("json", "j", false, "Print a summary of each playlist as JSON")
	playlistLsCmd.SetOut(os.Stdout)
}

type playlistSummary struct {
	Tracks   int     `json:"tracks"`
	Duration float64 `json:"duration"`
	Repeat   bool    `json:"repeat"`
}

var playlistLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List saved playlists",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json")) {
			saved, err := playlist.LoadAll()
			handleErr(err)

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(util.MapValues(saved, func(_ string, p *playlist.Playlist) playlistSummary {
				return playlistSummary{Tracks: p.Len(), Duration: p.Duration(), Repeat: p.Repeat}
			})))
			return
		}

		names, err := playlist.Names()
		handleErr(err)

		if len(names) == 0 {
			cmd.Println(style.Faint("No playlists yet. Create one with playlist new"))
			return
		}

		selectedName := viper.GetString(key.PlaylistDefault)
		for _, name := range names {
			p, err := playlist.Load(name)
			handleErr(err)

			marker := " "
			if name == selectedName {
				marker = style.Fg(color.Green)("*")
			}

			cmd.Printf("%s %s %s\n", marker, style.Bold(p.Name), style.Faint(fmt.Sprintf("%s, %s", util.Quantify(p.Len(), "track", "tracks"), util.FormatDuration(p.Duration()))))
		}
	},
}

func init() {
	playlistCmd.AddCommand(playlistShowCmd)
	playlistShowCmd.Flags().BoolP("json", "j", false, "Print the playlist as JSON")
	playlistShowCmd.SetOut(os.Stdout)
}

var playlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the tracks of a playlist",
	Run: func(cmd *cobra.Command, args []string) {
		p := selected(false)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(p))
			return
		}

		flags := ""
		if p.Repeat {
			flags = " " + icon.Get(icon.Repeat)
		}
		cmd.Println(style.Title(p.String()) + flags)

		for i := range p.Tracks {
			cmd.Println(trackLine(p, i))
		}
	},
}

func trackLine(p *playlist.Playlist, index int) string {
	marker := icon.Get(icon.Track)
	label := p.Label(index)

	if index == p.Current {
		marker = icon.Get(icon.Playing)
		label = style.Current.Render(label)
	}

	return fmt.Sprintf("%3d %s %s %s", index+1, marker, label, style.Duration.Render(util.MinSecs(p.Tracks[index].Duration)))
}

func init() {
	playlistCmd.AddCommand(playlistDeleteCmd)
	playlistDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	playlistDeleteCmd.ValidArgsFunction = completionPlaylistNames
}

var playlistDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"remove"},
	Short:   "Delete a saved playlist",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Delete playlist %q?", name),
				Default: false,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		existed, err := playlist.Delete(name)
		handleErr(err)

		if !existed {
			handleErr(fmt.Errorf("%w: %s", playlist.ErrNotFound, name))
		}
		success("deleted playlist %s", style.Fg(color.Purple)(name))
	},
}

func init() {
	playlistCmd.AddCommand(playlistSchemaCmd)
	playlistSchemaCmd.Flags().BoolP("store", "s", false, "Describe the whole playlist store instead of a single playlist")
}

var playlistSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of saved playlists",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		var schema *jsonschema.Schema
		switch {
		case lo.Must(cmd.Flags().GetBool("store")):
			schema = reflector.Reflect(map[string]*playlist.Playlist{})
		default:
			schema = reflector.Reflect(&playlist.Playlist{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}

func init() {
	playlistCmd.AddCommand(playlistExportCmd)
}

var playlistExportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Write the playlist as an M3U file",
	Long:  "Write the playlist as an M3U file into dir, the current directory by default.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path, err := playlist.Export(selected(false), dir)
		handleErr(err)
		success("exported to %s", path)
	},
}
