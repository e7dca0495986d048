package tui

type state int

const (
	browseState state = iota
	searchState
)
