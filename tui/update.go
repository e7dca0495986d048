package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// statusLifetime is how long a status message stays on screen.
const statusLifetime = 3 * time.Second

type clearStatusMsg struct {
	status string
}

func clearStatus(status string) tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{status: status}
	})
}

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.helpC.Width = b.contentWidth()
		b.scroll()
		return b, nil
	case clearStatusMsg:
		// A newer status has its own timer.
		if b.status == msg.status {
			b.status = ""
		}
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			b.save = false
			return b, tea.Quit
		}
	}

	switch b.state {
	case searchState:
		return b.updateSearch(msg)
	default:
		return b.updateBrowse(msg)
	}
}

// navigate handles the cursor keys shared by every state. It reports whether msg was one of them.
func (b *bubble) navigate(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, b.keymap.up):
		b.moveCursor(b.cursor - 1)
	case key.Matches(msg, b.keymap.down):
		b.moveCursor(b.cursor + 1)
	case key.Matches(msg, b.keymap.pageUp):
		b.moveCursor(b.cursor - b.listHeight())
	case key.Matches(msg, b.keymap.pageDown):
		b.moveCursor(b.cursor + b.listHeight())
	default:
		return false
	}

	return true
}

func (b *bubble) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || b.navigate(keyMsg) {
		return b, nil
	}

	status := b.status

	switch {
	case key.Matches(keyMsg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(keyMsg, b.keymap.top):
		b.moveCursor(0)
	case key.Matches(keyMsg, b.keymap.bottom):
		b.moveCursor(b.rows() - 1)
	case key.Matches(keyMsg, b.keymap.play):
		b.play(b.cursor)
	case key.Matches(keyMsg, b.keymap.next):
		b.skip(true)
	case key.Matches(keyMsg, b.keymap.prev):
		b.skip(false)
	case key.Matches(keyMsg, b.keymap.shuffle):
		b.shuffle()
	case key.Matches(keyMsg, b.keymap.sort):
		b.sort()
	case key.Matches(keyMsg, b.keymap.repeat):
		b.toggleRepeat()
	case key.Matches(keyMsg, b.keymap.remove):
		b.remove()
	case key.Matches(keyMsg, b.keymap.undo):
		b.undo()
	case key.Matches(keyMsg, b.keymap.search):
		return b, b.startSearch()
	case key.Matches(keyMsg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	if b.status != "" && b.status != status {
		return b, clearStatus(b.status)
	}
	return b, nil
}

func (b *bubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back):
			b.stopSearch(b.playlist.Current)
			return b, nil
		case key.Matches(msg, b.keymap.confirm):
			if index := b.trackIndex(); index != -1 {
				b.rememberSearch()
				b.stopSearch(index)
			}
			return b, nil
		case msg.Type == tea.KeyUp || msg.Type == tea.KeyDown || msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown:
			b.navigate(msg)
			return b, nil
		}
	}

	var cmd tea.Cmd
	query := b.inputC.Value()
	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != query {
		b.search(b.inputC.Value())
	}

	return b, cmd
}
