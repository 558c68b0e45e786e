// Package version models the project's semantic version identifier of the form
// MAJOR.MINOR.PATCH or MAJOR.MINOR.PATCH.devN and the single-line file it is
// persisted in.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// devPrefix introduces the optional development segment.
const devPrefix = "dev"

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:\.` + devPrefix + `(\d+))?$`)

// Version is a MAJOR.MINOR.PATCH identifier with an optional development number.
// A nil Dev means the development segment is absent.
type Version struct {
	Major int
	Minor int
	Patch int
	Dev   *int
}

// FormatError is returned when a string does not have the shape
// MAJOR.MINOR.PATCH or MAJOR.MINOR.PATCH.devN.
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("version must be given in format MAJOR.MINOR.PATCH or MAJOR.MINOR.PATCH.devN, but got: %q", e.Raw)
}

// Parse parses a version string. Surrounding whitespace is ignored.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Version{}, &FormatError{Raw: s}
	}

	var segments [4]int
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			// Only reachable on overflow; digits are guaranteed by the pattern.
			return Version{}, &FormatError{Raw: s}
		}
		segments[i] = n
	}

	v := Version{Major: segments[0], Minor: segments[1], Patch: segments[2]}
	if m[4] != "" {
		v.Dev = intPtr(segments[3])
	}
	return v, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version in the exact form accepted by Parse.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Dev != nil {
		s += "." + devPrefix + strconv.Itoa(*v.Dev)
	}
	return s
}

// Equal reports whether two versions have identical segments.
func (v Version) Equal(o Version) bool {
	if v.Major != o.Major || v.Minor != o.Minor || v.Patch != o.Patch {
		return false
	}
	if v.Dev == nil || o.Dev == nil {
		return v.Dev == nil && o.Dev == nil
	}
	return *v.Dev == *o.Dev
}

// IncrementDevelopment sets the development number to 1 if absent, otherwise increments it.
func (v Version) IncrementDevelopment() Version {
	next := Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
	if v.Dev == nil {
		next.Dev = intPtr(1)
	} else {
		next.Dev = intPtr(*v.Dev + 1)
	}
	return next
}

// DropDevelopment removes the development segment.
func (v Version) DropDevelopment() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

// IncrementPatch bumps the patch number and drops the development segment.
func (v Version) IncrementPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// IncrementMinor bumps the minor number, resets patch and drops the development segment.
func (v Version) IncrementMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// IncrementMajor bumps the major number, resets minor and patch and drops the development segment.
func (v Version) IncrementMajor() Version {
	return Version{Major: v.Major + 1}
}

func intPtr(n int) *int {
	return &n
}
