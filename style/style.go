// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/whisperdoll/aria-client/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate returns a rendering function that cuts strings wider than width cells, marking the cut with an ellipsis.
func Truncate(width int) func(string) string {
	return func(s string) string {
		if width <= 0 {
			return ""
		}
		return truncate.StringWithTail(s, uint(width), "…")
	}
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded heading banner.
var Title = func(s string) string {
	return New().Foreground(color.New("230")).Background(color.Purple).Padding(0, 1).Render(s)
}

// Browser row styles.
var (
	Cursor   = New().Foreground(color.HiPurple).Bold(true)
	Current  = New().Foreground(color.Green)
	Duration = New().Foreground(color.Gray)
)
