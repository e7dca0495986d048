// Package version looks up the latest published release and tells the user when theirs is outdated.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/color"
	"github.com/whisperdoll/aria-client/constant"
	"github.com/whisperdoll/aria-client/filesystem"
	"github.com/whisperdoll/aria-client/icon"
	"github.com/whisperdoll/aria-client/key"
	"github.com/whisperdoll/aria-client/log"
	"github.com/whisperdoll/aria-client/style"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/where"
)

const repository = "whisperdoll/aria-client"

// ReleasesURL is the endpoint queried for the latest release.
var ReleasesURL = "https://api.github.com/repos/" + repository + "/releases/latest"

var releaseCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "release.json"),
	Lifetime:   48 * time.Hour,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version, without the "v" prefix.
// Answers are cached for two days.
func Latest() (string, error) {
	cached, expired, err := releaseCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	latest, err := fetch(http.DefaultClient, ReleasesURL)
	if err != nil {
		return "", err
	}

	if err := releaseCacher.Set(latest); err != nil {
		log.Warnf("caching release %s: %s", latest, err)
	}

	return latest, nil
}

func fetch(client *http.Client, url string) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("release lookup: empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}

// Notify prints a notice when a newer release exists. Lookup failures are only logged.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a new version...")
	latest, err := Latest()
	erase()

	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if cmp, err := Compare(latest, constant.Version); err != nil || cmp <= 0 {
		return
	}

	fmt.Printf("\n%s New version available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint("(you have "+constant.Version+")"),
		style.Faint("https://github.com/"+repository+"/releases/tag/v"+latest),
	)
}
