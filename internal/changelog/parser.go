package changelog

import (
	"fmt"
	"io"
	"os"
)

// Parse reads a fragment file's content from r and returns its changesets.
// The file name is only used in error messages.
func Parse(file string, r io.Reader) ([]Changeset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return ParseLines(file, splitLines(string(data)))
}

// ParseFile reads and parses the fragment file at path.
func ParseFile(path string) ([]Changeset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// ParseLines validates the raw lines of a fragment file and groups them into
// changesets in file order.
func ParseLines(file string, raw []string) ([]Changeset, error) {
	lines, err := ScanLines(file, raw)
	if err != nil {
		return nil, err
	}
	return buildChangesets(lines), nil
}

// ScanLines classifies every raw line and validates the fragment structure.
// It returns the non-blank lines in order.
//
// Adjacency rules only consider the previous non-blank line: the first one
// must be a header, and a header must not be followed by another header or
// by the end of the file.
func ScanLines(file string, raw []string) ([]Line, error) {
	lines := make([]Line, 0, len(raw))
	var previous *Line

	for i, text := range raw {
		line, err := ClassifyLine(file, i+1, text)
		if err != nil {
			return nil, err
		}
		if line.Kind == Blank {
			continue
		}

		if err := validateAdjacency(file, &line, previous); err != nil {
			return nil, err
		}
		lines = append(lines, line)
		previous = &lines[len(lines)-1]
	}

	if err := validateAdjacency(file, nil, previous); err != nil {
		return nil, err
	}
	return lines, nil
}

// validateAdjacency checks a non-blank line against the previous non-blank
// line. A nil line stands for the end of the file.
func validateAdjacency(file string, line, previous *Line) error {
	if line != nil && line.Kind == Enumeration && previous == nil {
		return missingHeaderError(file, *line)
	}
	if previous != nil && previous.Kind == Header && (line == nil || line.Kind == Header) {
		return emptyHeaderError(file, *previous)
	}
	return nil
}

func buildChangesets(lines []Line) []Changeset {
	var changesets []Changeset
	for _, line := range lines {
		switch line.Kind {
		case Header:
			changesets = append(changesets, Changeset{Header: line.Content})
		case Enumeration:
			current := &changesets[len(changesets)-1]
			current.Contents = append(current.Contents, line.Content)
		}
	}
	return changesets
}
