package changelog

import (
	"strings"
	"unicode/utf8"
)

const (
	// PrefixHeader starts a changeset header in a fragment file.
	PrefixHeader = "# "
	// PrefixDash starts an enumeration item in a fragment file.
	PrefixDash = "- "
	// PrefixAsterisk is the alternative enumeration prefix.
	PrefixAsterisk = "* "
)

// PrefixesEnumeration returns the accepted enumeration prefixes.
func PrefixesEnumeration() []string {
	return []string{PrefixDash, PrefixAsterisk}
}

// ClassifyLine classifies a single raw line (without line terminator) of the
// named fragment file. Line numbers are 1-based.
func ClassifyLine(file string, number int, raw string) (Line, error) {
	if !utf8.ValidString(raw) {
		return Line{}, invalidEncodingError(file, number, raw)
	}

	if strings.TrimSpace(raw) == "" {
		return Line{Number: number, Kind: Blank, Raw: raw}, nil
	}

	kind, rest, ok := cutPrefix(raw)
	if !ok {
		return Line{}, invalidLineError(file, number, raw)
	}

	content := strings.TrimSpace(rest)
	if content == "" {
		return Line{}, emptyContentError(file, number, raw, kind)
	}

	return Line{Number: number, Kind: kind, Raw: raw, Content: content}, nil
}

// cutPrefix strips exactly one leading prefix marker.
func cutPrefix(raw string) (LineKind, string, bool) {
	if rest, ok := strings.CutPrefix(raw, PrefixHeader); ok {
		return Header, rest, true
	}
	for _, prefix := range PrefixesEnumeration() {
		if rest, ok := strings.CutPrefix(raw, prefix); ok {
			return Enumeration, rest, true
		}
	}
	return Blank, "", false
}

// splitLines splits text into lines without their terminators. A trailing
// newline does not produce an extra empty line and "\r\n" endings are accepted.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
