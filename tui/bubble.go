// Package tui implements the interactive playlist browser.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/whisperdoll/aria-client/icon"
	"github.com/whisperdoll/aria-client/log"
	"github.com/whisperdoll/aria-client/playlist"
	"github.com/whisperdoll/aria-client/query"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/viewport"
)

// undoLimit bounds how many removals can be undone.
const undoLimit = 50

// chrome is the number of terminal rows taken by everything but the track list.
const chrome = 5

type removal struct {
	track   playlist.Track
	index   int
	playing bool
}

// Options configure the browser. They are read from the configuration by Run.
type Options struct {
	Align        viewport.Align
	Partial      bool
	ShowDuration bool
	SortBy       playlist.SortKey
	KeepCurrent  bool
	Rand         util.Source
}

type bubble struct {
	state   state
	options Options

	playlist *playlist.Playlist
	cursor   int
	offset   int
	matches  []playlist.Match
	removed  util.Stack[removal]
	status   string
	save     bool

	keymap *keymap
	helpC  help.Model
	inputC textinput.Model

	width, height int
}

func newBubble(p *playlist.Playlist, options Options) *bubble {
	input := textinput.New()
	input.Placeholder = "title, artist or album"
	input.Prompt = "/ "
	input.ShowSuggestions = true

	b := &bubble{
		state:    browseState,
		options:  options,
		playlist: p,
		removed:  util.Stack[removal]{Limit: undoLimit},
		keymap:   newKeymap(),
		helpC:    help.New(),
		inputC:   input,
		width:    80,
		height:   24,
	}

	b.cursor = max(p.Current, 0)
	b.scroll()
	return b
}

// rows is the number of rows currently listed: all tracks, or the search matches.
func (b *bubble) rows() int {
	if b.state == searchState {
		return len(b.matches)
	}
	return b.playlist.Len()
}

// listHeight is how many rows fit on screen.
func (b *bubble) listHeight() int {
	return max(b.height-chrome, 1)
}

// trackIndex maps the cursor to a position in the playlist, or -1 when nothing is selected.
func (b *bubble) trackIndex() int {
	if b.state == searchState {
		if b.cursor < len(b.matches) {
			return b.matches[b.cursor].Index
		}
		return -1
	}

	if b.cursor < b.playlist.Len() {
		return b.cursor
	}
	return -1
}

func (b *bubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// moveCursor sets the cursor, clamped to the listed rows, and scrolls it into view.
func (b *bubble) moveCursor(to int) {
	b.cursor = util.Max(0, util.Min(to, b.rows()-1))
	b.scroll()
}

func (b *bubble) scroll() {
	view := viewport.Viewport{Offset: b.offset, Height: b.listHeight()}
	offset := viewport.ScrollIfNeeded(viewport.Rows(b.cursor, 1), view, b.options.Align, b.options.Partial)

	// Never leave blank rows below the last track.
	b.offset = util.Max(0, util.Min(offset, b.rows()-view.Height))
}

func (b *bubble) play(index int) {
	if err := b.playlist.Jump(index); err != nil {
		b.status = err.Error()
		return
	}

	b.save = true
	b.status = icon.Get(icon.Playing) + " " + b.playlist.Label(index)
}

func (b *bubble) skip(forward bool) {
	step := b.playlist.Previous
	if forward {
		step = b.playlist.Next
	}

	if step().IsAbsent() {
		b.status = "Nothing left to play"
		return
	}

	b.play(b.playlist.Current)
	b.moveCursor(b.playlist.Current)
}

func (b *bubble) shuffle() {
	b.playlist.Shuffle(b.options.Rand, b.options.KeepCurrent)
	b.removed.Clear()
	b.save = true
	b.status = icon.Get(icon.Shuffle) + " Shuffled"
	b.moveCursor(max(b.playlist.Current, 0))
}

func (b *bubble) sort() {
	b.playlist.Sort(b.options.SortBy)
	b.removed.Clear()
	b.save = true
	b.status = "Sorted by " + string(b.options.SortBy)
	b.moveCursor(max(b.playlist.Current, 0))
}

func (b *bubble) toggleRepeat() {
	b.playlist.Repeat = !b.playlist.Repeat
	b.save = true
	b.status = lo.Ternary(b.playlist.Repeat, icon.Get(icon.Repeat)+" Repeat on", "Repeat off")
}

func (b *bubble) remove() {
	index := b.trackIndex()
	if index == -1 {
		return
	}

	playing := index == b.playlist.Current
	res := b.playlist.RemoveAt(index)
	if !res.Existed {
		return
	}

	b.removed.Push(removal{track: res.Item, index: index, playing: playing})
	b.save = true
	b.status = "Removed " + res.Item.String()
	b.moveCursor(b.cursor)
}

func (b *bubble) undo() {
	last := b.removed.Pop()
	if last.IsAbsent() {
		b.status = "Nothing to undo"
		return
	}

	r := last.MustGet()
	index := b.playlist.AddAt(r.track, r.index).Index
	if r.playing {
		_ = b.playlist.Jump(index)
	}

	b.save = true
	b.status = "Restored " + r.track.String()
	b.moveCursor(index)
}

func (b *bubble) startSearch() tea.Cmd {
	b.setState(searchState)
	b.inputC.SetValue("")
	b.matches = nil
	b.cursor, b.offset = 0, 0
	b.inputC.SetSuggestions(query.SuggestMany(""))
	return b.inputC.Focus()
}

func (b *bubble) search(query string) {
	b.matches = b.playlist.Find(query)
	b.offset = 0
	b.moveCursor(0)
}

// rememberSearch keeps the current query for future suggestions.
func (b *bubble) rememberSearch() {
	if err := query.Remember(b.inputC.Value(), 1); err != nil {
		log.Warnf("remembering search: %s", err)
	}
}

func (b *bubble) stopSearch(goTo int) {
	b.inputC.Blur()
	b.matches = nil
	b.setState(browseState)
	b.moveCursor(goTo)
}
