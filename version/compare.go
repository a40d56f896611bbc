// Package version orders the version strings a store document is stamped with.
package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type semver struct {
	core       [3]int
	prerelease string
}

// parse accepts "1.2.3", "v1.2", "1.2.3-rc.1" and "1.2.3+build". Missing
// components count as zero and build metadata is ignored.
func parse(s string) (semver, error) {
	var v semver

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, _, _ = strings.Cut(s, "+")
	s, v.prerelease, _ = strings.Cut(s, "-")

	parts := strings.Split(s, ".")
	if s == "" || len(parts) > len(v.core) {
		return v, fmt.Errorf("malformed version %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("malformed version component %q", part)
		}
		v.core[i] = n
	}

	return v, nil
}

// Compare returns 1 if a is newer than b, -1 if it is older and 0 if they
// are the same release. A pre-release sorts before its release.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av.core {
		if c := cmp.Compare(av.core[i], bv.core[i]); c != 0 {
			return c, nil
		}
	}

	switch {
	case av.prerelease == bv.prerelease:
		return 0, nil
	case av.prerelease == "":
		return 1, nil
	case bv.prerelease == "":
		return -1, nil
	}

	return comparePrerelease(strings.Split(av.prerelease, "."), strings.Split(bv.prerelease, ".")), nil
}

// comparePrerelease orders dot-separated identifiers: numeric ones by value
// and below alphanumeric ones, the rest lexically, shorter lists first.
func comparePrerelease(a, b []string) int {
	for i := 0; i < lo.Min([]int{len(a), len(b)}); i++ {
		an, aErr := strconv.Atoi(a[i])
		bn, bErr := strconv.Atoi(b[i])

		var c int
		switch {
		case aErr == nil && bErr == nil:
			c = cmp.Compare(an, bn)
		case aErr == nil:
			c = -1
		case bErr == nil:
			c = 1
		default:
			c = cmp.Compare(a[i], b[i])
		}

		if c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}
