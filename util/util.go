// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Quantify prefixes the singular or plural label with count, e.g. "1 track" or "3 tracks".
func Quantify(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, lo.Ternary(count == 1, singular, plural))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Ignore calls f and drops its error. Meant for deferred closes.
func Ignore(f func() error) {
	_ = f()
}
