package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/key"
	"github.com/whisperdoll/aria-client/log"
	"github.com/whisperdoll/aria-client/playlist"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/viewport"
)

// OptionsFromConfig reads the browser options from the tui.* and playlist.* configuration keys.
// Invalid values are reported and replaced by the defaults.
func OptionsFromConfig() Options {
	align, err := viewport.ParseAlign(viper.GetString(key.TUIScrollAlign))
	if err != nil {
		log.Warnf("%s, using %s", err, viewport.Center)
		align = viewport.Center
	}

	sortBy, err := playlist.ParseSortKey(viper.GetString(key.PlaylistSortBy))
	if err != nil {
		log.Warnf("%s, using %s", err, playlist.ByTitle)
		sortBy = playlist.ByTitle
	}

	return Options{
		Align:        align,
		Partial:      viper.GetBool(key.TUIScrollPartial),
		ShowDuration: viper.GetBool(key.TUIShowDuration),
		SortBy:       sortBy,
		KeepCurrent:  viper.GetBool(key.PlaylistShuffleKeepCurrent),
	}
}

// Run opens the browser on p. Changes are saved when the user quits with q.
func Run(p *playlist.Playlist) error {
	b := newBubble(p, OptionsFromConfig())
	if width, height, err := util.TerminalSize(); err == nil {
		b.width, b.height = width, height
		b.scroll()
	}

	final, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if final, ok := final.(*bubble); ok && final.save {
		return playlist.Save(final.playlist)
	}
	return nil
}
