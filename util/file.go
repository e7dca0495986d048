package util

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/whisperdoll/aria-client/filesystem"
)

const unsafeInFilename = `\/<>:;"'|?!*{}#%&^+,~`

// SanitizeFilename turns name into something every platform accepts as a file name.
// Unsafe characters and whitespace become underscores, runs of underscores collapse
// into one and leading or trailing separators are dropped.
func SanitizeFilename(name string) string {
	replaced := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(unsafeInFilename, r) {
			return '_'
		}
		return r
	}, name)

	parts := strings.FieldsFunc(replaced, func(r rune) bool {
		return r == '_'
	})
	return strings.Trim(strings.Join(parts, "_"), "_-.")
}

// FileStem is the last element of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Delete removes path from the active filesystem, recursively for directories.
// Unlike RemoveAll it fails when path does not exist.
func Delete(path string) error {
	backend := filesystem.API()
	if _, err := backend.Stat(path); err != nil {
		return err
	}
	return backend.RemoveAll(path)
}

// IsNotExist reports whether err says a file or directory does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
