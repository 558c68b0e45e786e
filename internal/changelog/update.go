package changelog

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/relkit/internal/fsutil"
)

// InsertRelease inserts the rendered release into the master changelog content
// right before the first line starting with PrefixRelease, or at the end if
// there is none. All other lines are kept byte for byte.
func InsertRelease(existing, rendered string) string {
	lines := strings.SplitAfter(existing, "\n")
	position := releaseInsertPosition(lines)

	var b strings.Builder
	b.Grow(len(existing) + len(rendered) + 1)
	for _, line := range lines[:position] {
		b.WriteString(line)
	}
	if position == len(lines) && existing != "" && !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(rendered)
	for _, line := range lines[position:] {
		b.WriteString(line)
	}
	return b.String()
}

// releaseInsertPosition returns the index of the first release header line.
func releaseInsertPosition(lines []string) int {
	for i, line := range lines {
		if strings.HasPrefix(line, PrefixRelease) {
			return i
		}
	}
	return len(lines)
}

// Master is the master changelog loaded from disk.
type Master struct {
	Path    string
	Content string
}

// ReadMaster loads the master changelog at path.
func ReadMaster(path string) (*Master, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}
	return &Master{Path: path, Content: string(data)}, nil
}

// Insert inserts the rendered release and replaces the file with a single
// whole-file write. Content holds the new text once the write succeeded.
func (m *Master) Insert(rendered string) error {
	updated := InsertRelease(m.Content, rendered)
	if err := fsutil.AtomicWriteFile(m.Path, []byte(updated)); err != nil {
		return fmt.Errorf("writing changelog %s: %w", m.Path, err)
	}
	m.Content = updated
	return nil
}

// Extract returns the release section for the given version.
func (m *Master) Extract(version string) (string, error) {
	return ExtractRelease(m.Content, version)
}
