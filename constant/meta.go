// Package constant defines immutable application-level identifiers.
package constant

const (
	// Aria is the canonical application identifier used for filesystem paths, environment variables and CLI branding.
	Aria = "aria"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Logo is printed above the root command help.
const Logo = `
   ▄▀█ █▀█ █ ▄▀█
   █▀█ █▀▄ █ █▀█`
