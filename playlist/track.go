package playlist

import (
	"fmt"

	"github.com/whisperdoll/aria-client/util"
)

// Track is a single playable entry. Two tracks are the same track when all fields are equal.
type Track struct {
	ID       string  `json:"id" jsonschema:"description=Stable identifier, usually the file path or URL"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist,omitempty"`
	Album    string  `json:"album,omitempty"`
	Duration float64 `json:"duration" jsonschema:"description=Length in seconds,minimum=0"`
}

func (t Track) String() string {
	title := t.Title
	if title == "" {
		title = util.FileStem(t.ID)
	}

	if t.Artist == "" {
		return title
	}
	return fmt.Sprintf("%s - %s", t.Artist, title)
}
