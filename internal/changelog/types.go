package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/ariel-frischer/relkit/internal/version"
)

// LineKind classifies a single line of a fragment file.
type LineKind int

const (
	// Blank is an empty or whitespace-only line.
	Blank LineKind = iota
	// Header opens a new changeset.
	Header
	// Enumeration is a bullet belonging to the most recent header.
	Enumeration
)

// String returns a human-readable name for the line kind.
func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Header:
		return "header"
	case Enumeration:
		return "enumeration"
	default:
		return "unknown"
	}
}

// Line is a classified line of a fragment file.
// Content holds the text after the prefix marker and is empty for blank lines.
type Line struct {
	Number  int
	Kind    LineKind
	Raw     string
	Content string
}

// Changeset groups the enumeration items listed below a header.
type Changeset struct {
	Header   string
	Contents []string
}

// ReleaseKind is the kind of release being cut.
type ReleaseKind string

const (
	Major ReleaseKind = "major"
	Minor ReleaseKind = "minor"
	Patch ReleaseKind = "patch"
)

// ReleaseKinds returns all release kinds, largest first.
func ReleaseKinds() []ReleaseKind {
	return []ReleaseKind{Major, Minor, Patch}
}

// Noun returns the word used in the release sentence.
func (k ReleaseKind) Noun() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "feature"
	case Patch:
		return "bugfix"
	default:
		return string(k)
	}
}

// ParseReleaseKind accepts a kind name ("major", "minor", "patch") or its
// fragment alias ("main", "feature", "bugfix"), case-insensitively.
func ParseReleaseKind(s string) (ReleaseKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major", "main":
		return Major, nil
	case "minor", "feature":
		return Minor, nil
	case "patch", "bugfix":
		return Patch, nil
	default:
		return "", fmt.Errorf("unknown release kind %q (valid: major, minor, patch)", s)
	}
}

// Release is a single release entry to be added to the master changelog.
type Release struct {
	Version    version.Version
	Date       time.Time
	Kind       ReleaseKind
	Changesets []Changeset
}

// EntryCount returns the total number of enumeration items in the release.
func (r Release) EntryCount() int {
	count := 0
	for _, cs := range r.Changesets {
		count += len(cs.Contents)
	}
	return count
}
