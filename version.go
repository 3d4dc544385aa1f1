// Package tagline is a tagged text input for Bubble Tea programs: free text
// with removable tag chips picked from a palette.
//
// The content model lives in package content and the interactive component
// in package tagedit. This package only carries the release version.
package tagline

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Release is a parsed SemVer 2.0.0 version.
type Release struct {
	Major, Minor, Patch int
	Pre                 string
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	return s
}

// Stable reports whether r is a 1.x+ release without a pre-release suffix.
func (r Release) Stable() bool { return r.Major > 0 && r.Pre == "" }

// Version returns the embedded version string (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// ParseRelease parses v, which must be full SemVer without a leading `v`.
// Build metadata is accepted and dropped.
func ParseRelease(v string) (Release, error) {
	tagged := "v" + strings.TrimSpace(v)
	core, _, _ := strings.Cut(tagged, "+")
	// Canonical expands shorthand like v1.2, which is not valid SemVer.
	if !semver.IsValid(tagged) || semver.Canonical(tagged) != core {
		return Release{}, fmt.Errorf("parse version %q: not semver", v)
	}

	pre := semver.Prerelease(core)
	nums := strings.Split(strings.TrimSuffix(core[1:], pre), ".")
	var r Release
	for i, dst := range []*int{&r.Major, &r.Minor, &r.Patch} {
		n, err := strconv.Atoi(nums[i])
		if err != nil {
			return Release{}, fmt.Errorf("parse version %q: %w", v, err)
		}
		*dst = n
	}
	r.Pre = strings.TrimPrefix(pre, "-")
	return r, nil
}

// Current returns the embedded version parsed as a Release.
func Current() (Release, error) {
	return ParseRelease(Version())
}
