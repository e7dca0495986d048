package playlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/whisperdoll/aria-client/util"
)

// ErrUnknownSortKey is returned by ParseSortKey for unsupported keys.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey names a Track field playlists can be ordered by.
type SortKey string

const (
	ByTitle    SortKey = "title"
	ByArtist   SortKey = "artist"
	ByAlbum    SortKey = "album"
	ByDuration SortKey = "duration"
)

// SortKeys lists every supported key.
func SortKeys() []SortKey {
	return []SortKey{ByTitle, ByArtist, ByAlbum, ByDuration}
}

// ParseSortKey converts a user supplied name into a SortKey.
func ParseSortKey(name string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(name)))
	if !util.Contains(SortKeys(), key) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, name)
	}
	return key, nil
}

// Less returns the comparator ordering tracks by key. Text keys compare case-insensitively.
// An unknown key orders nothing, so sorting by it keeps the playlist as is.
func (k SortKey) Less() util.LessFunc[Track] {
	text := func(field func(Track) string) util.LessFunc[Track] {
		return func(a, b Track) bool {
			return strings.ToLower(field(a)) < strings.ToLower(field(b))
		}
	}

	switch k {
	case ByTitle:
		return text(func(t Track) string { return t.Title })
	case ByArtist:
		return text(func(t Track) string { return t.Artist })
	case ByAlbum:
		return text(func(t Track) string { return t.Album })
	case ByDuration:
		return func(a, b Track) bool { return a.Duration < b.Duration }
	default:
		return func(Track, Track) bool { return false }
	}
}
