package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/filesystem"
	"github.com/whisperdoll/aria-client/key"
	"github.com/whisperdoll/aria-client/playlist"
	"github.com/whisperdoll/aria-client/query"
	"github.com/whisperdoll/aria-client/viewport"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.TUISuggestions, true)
}

func numbered(n int) *playlist.Playlist {
	p := playlist.New("test")
	for i := 0; i < n; i++ {
		p.AddAt(playlist.Track{
			ID:       fmt.Sprintf("%02d.flac", i),
			Title:    fmt.Sprintf("Track %02d", i),
			Duration: 60,
		}, i)
	}
	return p
}

func press(b *bubble, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = b.Update(msg)
	}
	return cmd
}

func sized(b *bubble, width, rows int) *bubble {
	b.Update(tea.WindowSizeMsg{Width: width, Height: rows + chrome})
	return b
}

func TestScrolling(t *testing.T) {
	Convey("Given twenty tracks and five visible rows", t, func() {
		p := numbered(20)

		Convey("Top alignment scrolls the cursor to the first row", func() {
			b := sized(newBubble(p, Options{Align: viewport.Top}), 60, 5)
			press(b, "down", "down", "down", "down")
			So(b.cursor, ShouldEqual, 4)
			So(b.offset, ShouldEqual, 0)

			press(b, "down")
			So(b.cursor, ShouldEqual, 5)
			So(b.offset, ShouldEqual, 5)
		})

		Convey("Center alignment keeps the cursor in the middle", func() {
			b := sized(newBubble(p, Options{Align: viewport.Center}), 60, 5)
			press(b, "down", "down", "down", "down", "down")
			So(b.offset, ShouldEqual, 3)

			press(b, "down")
			So(b.offset, ShouldEqual, 3)
		})

		Convey("Bottom alignment scrolls by as little as needed", func() {
			b := sized(newBubble(p, Options{Align: viewport.Bottom}), 60, 5)
			press(b, "down", "down", "down", "down", "down")
			So(b.offset, ShouldEqual, 1)
		})

		Convey("The last page is never scrolled past", func() {
			b := sized(newBubble(p, Options{Align: viewport.Center}), 60, 5)
			press(b, "G")
			So(b.cursor, ShouldEqual, 19)
			So(b.offset, ShouldEqual, 15)

			press(b, "down")
			So(b.cursor, ShouldEqual, 19)

			press(b, "g", "up")
			So(b.cursor, ShouldEqual, 0)
			So(b.offset, ShouldEqual, 0)
		})

		Convey("The browser opens on the playing track", func() {
			So(p.Jump(12), ShouldBeNil)
			b := sized(newBubble(p, Options{Align: viewport.Top}), 60, 5)
			So(b.cursor, ShouldEqual, 12)
			So(b.offset, ShouldEqual, 12)
		})
	})
}

func TestEditing(t *testing.T) {
	Convey("Given three tracks with the first playing", t, func() {
		p := numbered(3)
		b := sized(newBubble(p, Options{Align: viewport.Top, SortBy: playlist.ByTitle}), 60, 5)
		So(p.Current, ShouldEqual, 0)

		Convey("Enter plays the selected track", func() {
			press(b, "down", "enter")
			So(p.Current, ShouldEqual, 1)
			So(b.save, ShouldBeTrue)
		})

		Convey("Removing and undoing restores the track in place", func() {
			press(b, "down", "d")
			So(p.Len(), ShouldEqual, 2)
			So(p.Tracks[1].Title, ShouldEqual, "Track 02")

			press(b, "u")
			So(p.Len(), ShouldEqual, 3)
			So(p.Tracks[1].Title, ShouldEqual, "Track 01")
			So(p.Current, ShouldEqual, 0)
			So(b.cursor, ShouldEqual, 1)
		})

		Convey("Undoing the removal of the playing track plays it again", func() {
			press(b, "d")
			So(p.CurrentTrack().MustGet().Title, ShouldEqual, "Track 01")

			press(b, "u")
			So(p.CurrentTrack().MustGet().Title, ShouldEqual, "Track 00")
		})

		Convey("Undo with nothing removed changes nothing", func() {
			press(b, "u")
			So(p.Len(), ShouldEqual, 3)
			So(b.status, ShouldEqual, "Nothing to undo")
		})

		Convey("Sorting clears the undo history", func() {
			press(b, "d", "o", "u")
			So(p.Len(), ShouldEqual, 2)
		})

		Convey("Next and previous follow the playlist", func() {
			press(b, "n", "n")
			So(p.Current, ShouldEqual, 2)
			So(b.cursor, ShouldEqual, 2)

			press(b, "n")
			So(p.Current, ShouldEqual, 2)
			So(b.status, ShouldEqual, "Nothing left to play")

			press(b, "r", "n")
			So(p.Repeat, ShouldBeTrue)
			So(p.Current, ShouldEqual, 0)
		})

		Convey("q quits keeping the changes", func() {
			press(b, "d")
			So(press(b, "q"), ShouldNotBeNil)
			So(b.save, ShouldBeTrue)
		})

		Convey("ctrl+c quits discarding them", func() {
			press(b, "d")
			So(press(b, "ctrl+c"), ShouldNotBeNil)
			So(b.save, ShouldBeFalse)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a playlist being searched", t, func() {
		p := playlist.New("mix")
		for i, title := range []string{"Intro", "Blue Hour", "Coda", "Drift"} {
			p.AddAt(playlist.Track{ID: title, Title: title, Duration: 100}, i)
		}

		b := sized(newBubble(p, Options{Align: viewport.Top}), 60, 5)
		press(b, "/")
		So(b.state, ShouldEqual, searchState)

		press(b, "c", "o", "d")
		So(b.inputC.Value(), ShouldEqual, "cod")
		So(b.matches, ShouldNotBeEmpty)
		So(b.matches[0].Track.Title, ShouldEqual, "Coda")

		Convey("Enter moves the cursor to the match", func() {
			press(b, "enter")
			So(b.state, ShouldEqual, browseState)
			So(b.cursor, ShouldEqual, 2)
			So(p.Current, ShouldEqual, 0)
			So(query.SuggestMany("co"), ShouldContain, "cod")
		})

		Convey("Esc goes back to the playing track", func() {
			press(b, "esc")
			So(b.state, ShouldEqual, browseState)
			So(b.cursor, ShouldEqual, 0)
			So(b.matches, ShouldBeEmpty)
		})

		Convey("Letters are typed instead of acting as keys", func() {
			press(b, "d")
			So(p.Len(), ShouldEqual, 4)
		})
	})
}

func TestView(t *testing.T) {
	Convey("Given a narrow terminal", t, func() {
		p := numbered(5)
		p.AddAt(playlist.Track{ID: "long", Title: strings.Repeat("very long title ", 10), Duration: 300}, 0)

		b := sized(newBubble(p, Options{Align: viewport.Top, ShowDuration: true}), 40, 8)
		view := b.View()

		Convey("No line is wider than the terminal", func() {
			for _, line := range strings.Split(view, "\n") {
				So(lipgloss.Width(line), ShouldBeLessThanOrEqualTo, 40)
			}
		})

		Convey("Long titles are cut and durations shown", func() {
			So(view, ShouldContainSubstring, "…")
			So(view, ShouldContainSubstring, "05:00")
			So(view, ShouldContainSubstring, "6 tracks")
		})
	})

	Convey("An empty playlist says so", t, func() {
		b := newBubble(playlist.New("empty"), Options{})
		So(b.View(), ShouldContainSubstring, "empty")
		press(b, "d", "enter", "down")
		So(b.cursor, ShouldEqual, 0)
	})
}

func TestStatus(t *testing.T) {
	Convey("Status messages expire", t, func() {
		b := sized(newBubble(numbered(2), Options{}), 60, 5)

		cmd := press(b, "u")
		So(cmd, ShouldNotBeNil)
		So(b.status, ShouldEqual, "Nothing to undo")

		b.Update(clearStatusMsg{status: "something older"})
		So(b.status, ShouldEqual, "Nothing to undo")

		b.Update(clearStatusMsg{status: "Nothing to undo"})
		So(b.status, ShouldBeEmpty)
	})
}
