package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Compare orders two "major.minor.patch" versions, with an optional "v" prefix.
// Missing components count as zero. It returns 1 if a is newer, -1 if b is, 0 otherwise.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parse(s string) ([3]int, error) {
	var v [3]int

	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) > len(v) {
		return v, fmt.Errorf("version %q: too many components", s)
	}

	nums := lo.Map(parts, func(p string, _ int) int {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return -1
		}
		return n
	})

	if lo.Contains(nums, -1) {
		return v, fmt.Errorf("version %q: malformed component", s)
	}

	copy(v[:], nums)
	return v, nil
}
