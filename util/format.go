package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidDuration is returned for durations that are negative, NaN or infinite,
// and for mm:ss input whose seconds are not below 60.
var ErrInvalidDuration = errors.New("invalid duration")

// ValidSeconds reports whether seconds is a finite, non-negative duration.
func ValidSeconds(seconds float64) bool {
	return !math.IsNaN(seconds) && !math.IsInf(seconds, 0) && seconds >= 0
}

// MinSecs renders a number of seconds as mm:ss, truncating fractions.
// A part that cannot be computed, such as for NaN, is rendered as "--".
func MinSecs(totalSecs float64) string {
	part := func(v float64) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "--"
		}
		return fmt.Sprintf("%02d", int64(v))
	}

	return part(math.Floor(totalSecs/60)) + ":" + part(math.Floor(math.Mod(totalSecs, 60)))
}

// FormatDuration renders seconds, rounded to the nearest whole second, as mm:ss.
// Minutes are not folded into hours, so an hour and a half is 90:00.
// Durations rejected by ValidSeconds render as --:--.
func FormatDuration(seconds float64) string {
	if !ValidSeconds(seconds) {
		return "--:--"
	}

	total := int64(math.Round(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ClassList joins the non-empty parts with single spaces.
func ClassList(parts ...string) string {
	return strings.Join(lo.Compact(parts), " ")
}

// ParseSeconds parses a duration given either as plain seconds ("215", "215.4") or as mm:ss ("3:35").
// Values rejected by ValidSeconds wrap ErrInvalidDuration.
func ParseSeconds(s string) (float64, error) {
	minutes, seconds, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		v, err := strconv.ParseFloat(minutes, 64)
		if err != nil {
			return 0, err
		}
		if !ValidSeconds(v) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidDuration, s)
		}
		return v, nil
	}

	m, err := strconv.ParseUint(minutes, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("minutes: %w", err)
	}

	sec, err := strconv.ParseFloat(seconds, 64)
	if err != nil {
		return 0, fmt.Errorf("seconds: %w", err)
	}
	if !ValidSeconds(sec) || sec >= 60 {
		return 0, fmt.Errorf("%w: seconds of %s must be in [0, 60)", ErrInvalidDuration, s)
	}

	return float64(m)*60 + sec, nil
}
