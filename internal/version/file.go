package version

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/relkit/internal/fsutil"
)

// FileShapeError is returned when the version file does not contain exactly one line.
type FileShapeError struct {
	Path  string
	Lines int
}

func (e *FileShapeError) Error() string {
	return fmt.Sprintf("file %q must contain exactly one line, but has %d", e.Path, e.Lines)
}

// File is the single-line file the current version is persisted in.
type File struct {
	Path string
}

// NewFile returns a File for the given path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// ReadRaw returns the single line of the version file without its line terminator.
func (f *File) ReadRaw() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading version file: %w", err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	content = strings.TrimSuffix(content, "\r")
	if content == "" {
		return "", &FileShapeError{Path: f.Path, Lines: 0}
	}

	lines := strings.Split(content, "\n")
	if len(lines) != 1 {
		return "", &FileShapeError{Path: f.Path, Lines: len(lines)}
	}
	return lines[0], nil
}

// Read parses the version stored in the file.
func (f *File) Read() (Version, error) {
	raw, err := f.ReadRaw()
	if err != nil {
		return Version{}, err
	}
	v, err := Parse(raw)
	if err != nil {
		return Version{}, fmt.Errorf("parsing %s: %w", f.Path, err)
	}
	return v, nil
}

// Write replaces the file content with the given version. The new content is
// written to a temporary file in the same directory and renamed into place.
func (f *File) Write(v Version) error {
	if err := fsutil.AtomicWriteFile(f.Path, []byte(v.String()+"\n")); err != nil {
		return fmt.Errorf("writing version file %s: %w", f.Path, err)
	}
	return nil
}
