package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/whisperdoll/aria-client/icon"
	"github.com/whisperdoll/aria-client/style"
	"github.com/whisperdoll/aria-client/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(0, 1)

func (b *bubble) View() string {
	lines := []string{b.viewHeader(), ""}

	end := min(b.offset+b.listHeight(), b.rows())
	for row := b.offset; row < end; row++ {
		lines = append(lines, b.viewRow(row))
	}

	if b.rows() == 0 {
		lines = append(lines, style.Faint(b.emptyText()))
	}

	for len(lines) < b.listHeight()+2 {
		lines = append(lines, "")
	}

	lines = append(lines, "", b.viewStatus(), b.helpC.View(b.keymap))
	return paddingStyle.Render(strings.Join(lines, "\n"))
}

func (b *bubble) emptyText() string {
	if b.state == searchState {
		return "No matches"
	}
	return "This playlist is empty"
}

func (b *bubble) viewHeader() string {
	header := style.Title(b.playlist.Name) + " " + style.Faint(fmt.Sprintf(
		"%s, %s",
		util.Quantify(b.playlist.Len(), "track", "tracks"),
		util.FormatDuration(b.playlist.Duration()),
	))

	if b.playlist.Repeat {
		header += " " + icon.Get(icon.Repeat)
	}
	return header
}

func (b *bubble) viewStatus() string {
	if b.state == searchState {
		return b.inputC.View()
	}
	return style.Italic(b.status)
}

// contentWidth is the row width left after padding.
func (b *bubble) contentWidth() int {
	return max(b.width-paddingStyle.GetHorizontalPadding(), 0)
}

func (b *bubble) viewRow(row int) string {
	index := row
	if b.state == searchState {
		index = b.matches[row].Index
	}

	track := b.playlist.Tracks[index]
	digits := len(strconv.Itoa(b.playlist.Len()))

	cursor := "  "
	if row == b.cursor {
		cursor = style.Cursor.Render("›") + " "
	}

	marker := " "
	if index == b.playlist.Current {
		marker = icon.Get(icon.Playing)
	}

	prefix := fmt.Sprintf("%s%s %*d ", cursor, marker, digits, index+1)

	var duration string
	if b.options.ShowDuration {
		duration = " " + util.MinSecs(track.Duration)
	}

	width := b.contentWidth() - lipgloss.Width(prefix) - lipgloss.Width(duration)
	label := style.Truncate(width)(b.playlist.Label(index))
	label += strings.Repeat(" ", max(width-lipgloss.Width(label), 0))

	switch {
	case row == b.cursor:
		label = style.Cursor.Render(label)
	case index == b.playlist.Current:
		label = style.Current.Render(label)
	}

	return prefix + label + style.Duration.Render(duration)
}
