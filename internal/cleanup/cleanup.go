// Package cleanup prunes files the client leaves behind in its logs and cache directories.
package cleanup

import (
	"os"
	"time"

	"github.com/whisperdoll/aria-client/filesystem"
	"github.com/whisperdoll/aria-client/log"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/where"
)

// Retention is how many days an unused log file is kept.
const Retention = 30

// Prune removes the regular files under dir that were last modified more than days calendar days before now.
// It returns how many files were removed. A missing dir is not an error.
func Prune(dir string, days int, now time.Time) (int, error) {
	fs := filesystem.API()

	var pruned int
	err := fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if util.IsNotExist(err) {
				return nil
			}
			return err
		}

		if info.IsDir() || util.DaysBetween(info.ModTime(), now) <= days {
			return nil
		}

		if err := fs.Remove(path); err != nil {
			return err
		}

		pruned++
		return nil
	})

	return pruned, err
}

// CollectGarbage prunes old log files. Failures are logged and otherwise ignored.
func CollectGarbage() {
	n, err := Prune(where.Logs(), Retention, time.Now())
	if err != nil {
		log.Errorf("pruning logs: %s", err)
		return
	}

	if n > 0 {
		log.Infof("pruned %d old log files", n)
	}
}
