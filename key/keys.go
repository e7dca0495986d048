// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playlist Behaviour - these keys control how playlists are opened, ordered and navigated.
const (
	PlaylistDefault            = "playlist.default"
	PlaylistSortBy             = "playlist.sort_by"
	PlaylistRepeat             = "playlist.repeat"
	PlaylistShuffleKeepCurrent = "playlist.shuffle_keeps_current"
	PlaylistAllowDuplicates    = "playlist.allow_duplicates"
)

// Terminal User Interface (TUI) - these keys define the playlist browser's scrolling and layout.
const (
	TUIScrollAlign   = "tui.scroll_align"
	TUIScrollPartial = "tui.scroll_partial"
	TUIShowDuration  = "tui.show_duration"
	TUISuggestions   = "tui.search_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
