// Package filesystem routes every disk access of the client through a swappable afero backend,
// so that tests and dry runs can work on an in-memory tree.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Use replaces the backend with fs.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh, empty in-memory backend.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}
