package playlist

import (
	"errors"
	"fmt"

	"github.com/metafates/gache"
	"github.com/whisperdoll/aria-client/filesystem"
	"github.com/whisperdoll/aria-client/log"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/where"
)

// ErrNotFound is returned when a named playlist is not in the store.
var ErrNotFound = errors.New("playlist not found")

// cacher is the disk-backed registry of every saved playlist, keyed by name.
var cacher = gache.New[map[string]*Playlist](
	&gache.Options{
		Path:       where.Playlists(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func all() (map[string]*Playlist, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Playlist), nil
	}
	return cached, nil
}

// LoadAll returns every saved playlist keyed by name.
func LoadAll() (map[string]*Playlist, error) {
	return all()
}

// Names returns the names of all saved playlists in ascending order.
func Names() ([]string, error) {
	saved, err := all()
	if err != nil {
		return nil, err
	}
	return util.SortedKeys(saved), nil
}

// Load returns the saved playlist called name.
func Load(name string) (*Playlist, error) {
	saved, err := all()
	if err != nil {
		return nil, err
	}

	p, ok := saved[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	// Documents written by hand may omit the position.
	if p.Current >= len(p.Tracks) {
		p.Current = len(p.Tracks) - 1
	}
	if p.Tracks == nil {
		p.Tracks = []Track{}
	}
	return p, nil
}

// LoadOrNew returns the saved playlist called name, or a new empty one if there is none.
// created reports which of the two it is.
func LoadOrNew(name string) (p *Playlist, created bool, err error) {
	p, err = Load(name)
	if errors.Is(err, ErrNotFound) {
		return New(name), true, nil
	}
	return p, false, err
}

// Save stores p under its name, replacing any previous version.
// Nothing is written when p does not validate, and a failed write leaves the registry as it was.
func Save(p *Playlist) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("save %q: %w", p.Name, err)
	}

	saved, err := all()
	if err != nil {
		return err
	}

	previous, existed := saved[p.Name]
	saved[p.Name] = p
	log.Debugf("saving playlist %q with %s", p.Name, util.Quantify(p.Len(), "track", "tracks"))

	if err := cacher.Set(saved); err != nil {
		if existed {
			saved[p.Name] = previous
		} else {
			delete(saved, p.Name)
		}
		return fmt.Errorf("save %q: %w", p.Name, err)
	}
	return nil
}

// Delete removes the playlist called name and reports whether it existed.
func Delete(name string) (bool, error) {
	saved, err := all()
	if err != nil {
		return false, err
	}

	previous, ok := saved[name]
	if !ok {
		return false, nil
	}

	delete(saved, name)

	if err := cacher.Set(saved); err != nil {
		saved[name] = previous
		return false, fmt.Errorf("delete %q: %w", name, err)
	}

	log.Infof("deleted playlist %q", name)
	return true, nil
}
