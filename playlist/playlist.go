// Package playlist implements ordered, persisted track lists on top of the sequence helpers in util.
package playlist

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/whisperdoll/aria-client/util"
)

// Playlist is an ordered list of tracks with a playback position.
//
// Current is the index of the playing track, or -1 when nothing is playing.
// Every mutating method keeps Current on the same track it pointed at before;
// when that track itself is removed, the track that slides into its place becomes current.
type Playlist struct {
	Name    string  `json:"name"`
	Tracks  []Track `json:"tracks"`
	Current int     `json:"current" jsonschema:"description=Index of the playing track or -1 when stopped,minimum=-1"`
	Repeat  bool    `json:"repeat" jsonschema:"description=Wrap around at either end instead of stopping"`
}

// Match is a Find result.
type Match struct {
	Index    int
	Track    Track
	Distance int
}

// New returns an empty playlist.
func New(name string) *Playlist {
	return &Playlist{Name: name, Tracks: []Track{}, Current: -1}
}

func (p *Playlist) Len() int {
	return len(p.Tracks)
}

func (p *Playlist) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, util.Quantify(p.Len(), "track", "tracks"), util.FormatDuration(p.Duration()))
}

// CurrentTrack returns the playing track, if any.
func (p *Playlist) CurrentTrack() mo.Option[Track] {
	if p.Current < 0 || p.Current >= len(p.Tracks) {
		return mo.None[Track]()
	}
	return mo.Some(p.Tracks[p.Current])
}

// Duration is the total length of all tracks in seconds.
func (p *Playlist) Duration() float64 {
	return lo.SumBy(p.Tracks, func(t Track) float64 {
		return t.Duration
	})
}

// Validate reports the first track whose duration cannot be stored.
func (p *Playlist) Validate() error {
	for i, t := range p.Tracks {
		if !util.ValidSeconds(t.Duration) {
			return fmt.Errorf("track %d (%s): %w", i+1, t.ID, util.ErrInvalidDuration)
		}
	}
	return nil
}

// Add appends t unless the playlist already holds it.
func (p *Playlist) Add(t Track) util.Presence[Track] {
	res := util.EnsureOne(&p.Tracks, t)
	if !res.Existed {
		p.inserted(res.Index)
	}
	return res
}

// AddAt inserts t at index, clamped to the playlist bounds. Duplicates are allowed.
func (p *Playlist) AddAt(t Track, index int) util.Insertion[Track] {
	res := util.Insert(&p.Tracks, t, index)
	p.inserted(res.Index)
	return res
}

// AddSorted inserts t before the first track that sorts after it by key.
func (p *Playlist) AddSorted(t Track, key SortKey) util.Insertion[Track] {
	res := util.InsertFunc(&p.Tracks, t, key.Less())
	p.inserted(res.Index)
	return res
}

// AddRandom inserts t at a random position, the end included.
func (p *Playlist) AddRandom(t Track, r util.Source) util.Insertion[Track] {
	res := util.InsertRandom(&p.Tracks, t, r)
	p.inserted(res.Index)
	return res
}

// Remove deletes the first occurrence of t.
func (p *Playlist) Remove(t Track) util.Removal[Track] {
	res := util.Remove(&p.Tracks, t)
	if res.Existed {
		p.removed(res.Index)
	}
	return res
}

// RemoveAll deletes every occurrence of t.
func (p *Playlist) RemoveAll(t Track) util.Removals[Track] {
	res := util.RemoveAll(&p.Tracks, t)
	p.removed(res.Indexes...)
	return res
}

// RemoveAt deletes the track at index.
func (p *Playlist) RemoveAt(index int) util.Removal[Track] {
	res := util.RemoveAt(&p.Tracks, index)
	if res.Existed {
		p.removed(res.Index)
	}
	return res
}

// Swap exchanges the tracks at i and j.
func (p *Playlist) Swap(i, j int) error {
	if err := util.Swap(p.Tracks, i, j); err != nil {
		return err
	}

	p.swapped(i, j)
	return nil
}

// SwapTracks exchanges the first occurrences of a and b. It reports false when either is missing.
func (p *Playlist) SwapTracks(a, b Track) bool {
	i, j := util.IndexOf(p.Tracks, a), util.IndexOf(p.Tracks, b)
	if !util.SwapItems(p.Tracks, a, b) {
		return false
	}

	p.swapped(i, j)
	return true
}

// Move takes the track at from out of the playlist and reinserts it at to.
func (p *Playlist) Move(from, to int) error {
	if from < 0 || from >= len(p.Tracks) {
		return fmt.Errorf("move %d: %w", from, util.ErrIndexOutOfRange)
	}

	playing := from == p.Current
	res := util.Insert(&p.Tracks, util.RemoveAt(&p.Tracks, from).Item, to)

	switch {
	case playing:
		p.Current = res.Index
	default:
		if from < p.Current {
			p.Current--
		}
		if res.Index <= p.Current {
			p.Current++
		}
	}

	return nil
}

// Shuffle puts the tracks in random order. With keepCurrent the playing track is moved to the front
// so that everything after it is still ahead in the queue.
func (p *Playlist) Shuffle(r util.Source, keepCurrent bool) {
	order := util.Range(0, len(p.Tracks))
	util.Shuffle(order, r)
	p.reorder(order)

	if keepCurrent && p.Current > 0 {
		_ = p.Move(p.Current, 0)
	}
}

// Sort orders the tracks by key. Tracks with equal keys keep their relative order.
func (p *Playlist) Sort(key SortKey) {
	less := key.Less()
	p.reorder(util.MergeSort(util.Range(0, len(p.Tracks)), func(a, b int) bool {
		return less(p.Tracks[a], p.Tracks[b])
	}))
}

// Jump makes the track at index current.
func (p *Playlist) Jump(index int) error {
	if index < 0 || index >= len(p.Tracks) {
		return fmt.Errorf("jump to %d: %w", index, util.ErrIndexOutOfRange)
	}

	p.Current = index
	return nil
}

// Next advances to the following track. Without Repeat it stops at the end and returns None,
// leaving Current where it was.
func (p *Playlist) Next() mo.Option[Track] {
	return p.step(1)
}

// Previous goes back one track, wrapping to the end when Repeat is set.
func (p *Playlist) Previous() mo.Option[Track] {
	return p.step(-1)
}

func (p *Playlist) step(delta int) mo.Option[Track] {
	if len(p.Tracks) == 0 {
		return mo.None[Track]()
	}

	target := p.Current + delta
	if p.Current < 0 && delta < 0 {
		target = len(p.Tracks) - 1
	}

	if p.Repeat {
		track := lo.Must(util.ItemAt(p.Tracks, target))
		p.Current = util.Mod(target, len(p.Tracks))
		return mo.Some(track)
	}

	if target < 0 || target >= len(p.Tracks) {
		return mo.None[Track]()
	}

	p.Current = target
	return mo.Some(p.Tracks[target])
}

// Label is the display name of the track at index. Repeated names get their occurrence number appended.
func (p *Playlist) Label(index int) string {
	names := lo.Map(p.Tracks, func(t Track, _ int) string {
		return t.String()
	})

	if n := util.Occurrence(names, index); n > 1 {
		return fmt.Sprintf("%s (%d)", names[index], n)
	}
	return names[index]
}

// Find returns the tracks fuzzily matching query, closest titles first.
// Equally close matches keep playlist order.
func (p *Playlist) Find(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []Match
	for i, t := range p.Tracks {
		if !fuzzy.MatchFold(query, util.ClassList(t.String(), t.Album)) {
			continue
		}

		matches = append(matches, Match{
			Index:    i,
			Track:    t,
			Distance: levenshtein.Distance(query, strings.ToLower(t.Title)),
		})
	}

	return util.MergeSort(matches, func(a, b Match) bool {
		return a.Distance < b.Distance
	})
}

func (p *Playlist) inserted(index int) {
	switch {
	case p.Current < 0:
		p.Current = 0
	case index <= p.Current:
		p.Current++
	}
}

// removed adjusts Current after removals at indexes, each relative to the playlist
// as it was when that removal happened.
func (p *Playlist) removed(indexes ...int) {
	for _, index := range indexes {
		if index < p.Current {
			p.Current--
		}
	}

	if p.Current >= len(p.Tracks) {
		p.Current = len(p.Tracks) - 1
	}
}

func (p *Playlist) swapped(i, j int) {
	switch p.Current {
	case i:
		p.Current = j
	case j:
		p.Current = i
	}
}

// reorder rearranges the tracks so that position i holds the track previously at order[i].
func (p *Playlist) reorder(order []int) {
	tracks := make([]Track, len(order))
	current := -1

	for i, from := range order {
		tracks[i] = p.Tracks[from]
		if from == p.Current {
			current = i
		}
	}

	p.Tracks = tracks
	p.Current = current
}
