package playlist

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/whisperdoll/aria-client/filesystem"
	"github.com/whisperdoll/aria-client/log"
	"github.com/whisperdoll/aria-client/util"
)

// M3U renders p as an extended M3U document. Durations are rounded to whole seconds.
func (p *Playlist) M3U() string {
	var b strings.Builder

	b.WriteString("#EXTM3U\n")
	if p.Name != "" {
		fmt.Fprintf(&b, "#PLAYLIST:%s\n", p.Name)
	}

	for _, t := range p.Tracks {
		fmt.Fprintf(&b, "#EXTINF:%d,%s\n%s\n", int64(math.Round(t.Duration)), t, t.ID)
	}

	return b.String()
}

// FileName is the file name Export uses for p.
func (p *Playlist) FileName() string {
	name := util.SanitizeFilename(p.Name)
	if name == "" {
		name = "playlist"
	}
	return name + ".m3u"
}

// Export writes p as M3U into dir and returns the path of the written file.
func Export(p *Playlist, dir string) (string, error) {
	fs := filesystem.API()
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, p.FileName())
	if err := fs.WriteFile(path, []byte(p.M3U()), 0o644); err != nil {
		return "", fmt.Errorf("export %s: %w", p.Name, err)
	}

	log.Infof("exported playlist %q to %s", p.Name, path)
	return path, nil
}
