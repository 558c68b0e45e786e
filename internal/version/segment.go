package version

import (
	"fmt"
	"strings"
)

// Segment names a part of the version that can be incremented.
type Segment string

const (
	SegmentDevelopment Segment = "dev"
	SegmentPatch       Segment = "patch"
	SegmentMinor       Segment = "minor"
	SegmentMajor       Segment = "major"
)

// Segments returns all incrementable segments, smallest first.
func Segments() []Segment {
	return []Segment{SegmentDevelopment, SegmentPatch, SegmentMinor, SegmentMajor}
}

// ParseSegment parses a segment name case-insensitively.
func ParseSegment(s string) (Segment, error) {
	normalized := Segment(strings.ToLower(strings.TrimSpace(s)))
	for _, seg := range Segments() {
		if seg == normalized {
			return seg, nil
		}
	}
	return "", fmt.Errorf("unknown version segment %q (valid: dev, patch, minor, major)", s)
}

// Increment applies the increment transition for the given segment.
func (v Version) Increment(seg Segment) (Version, error) {
	switch seg {
	case SegmentDevelopment:
		return v.IncrementDevelopment(), nil
	case SegmentPatch:
		return v.IncrementPatch(), nil
	case SegmentMinor:
		return v.IncrementMinor(), nil
	case SegmentMajor:
		return v.IncrementMajor(), nil
	default:
		return Version{}, fmt.Errorf("unknown version segment %q", seg)
	}
}
