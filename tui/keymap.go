package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/whisperdoll/aria-client/color"
	"github.com/whisperdoll/aria-client/style"
)

type keymap struct {
	state state

	up, down,
	pageUp, pageDown,
	top, bottom,
	play, next, prev,
	shuffle, sort, remove, undo, repeat,
	search, confirm, back,
	quit, forceQuit,
	showHelp key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.HiPurple)("enter"), style.Fg(color.HiPurple)("play")),
		),
		next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next"),
		),
		prev: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous"),
		),
		shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo remove"),
		),
		repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go to"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "save & quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit without saving"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keymap) setState(s state) {
	k.state = s
}

func (k *keymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case searchState:
		return h(k.confirm, k.back), h(k.up, k.down, k.confirm, k.back, k.forceQuit)
	default:
		return h(k.play, k.search, k.remove, k.quit, k.showHelp),
			h(k.up, k.down, k.pageUp, k.pageDown, k.top, k.bottom,
				k.play, k.next, k.prev, k.shuffle, k.sort, k.repeat,
				k.remove, k.undo, k.search, k.quit, k.forceQuit)
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *keymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full[:len(full)/2], full[len(full)/2:]}
}
