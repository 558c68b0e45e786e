package changelog

import (
	"fmt"
	"strings"
)

// ErrorKind distinguishes grammar violations from structure violations.
type ErrorKind int

const (
	// ErrKindGrammar is an unrecognized line shape or a prefix without content.
	ErrKindGrammar ErrorKind = iota
	// ErrKindStructure is a fragment that opens with an enumeration or a header without items.
	ErrKindStructure
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	if k == ErrKindStructure {
		return "structure"
	}
	return "grammar"
}

// ValidationError describes why a fragment file is malformed.
type ValidationError struct {
	Kind    ErrorKind
	File    string
	Line    int
	Raw     string
	Header  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidLineError(file string, number int, raw string) *ValidationError {
	return &ValidationError{
		Kind: ErrKindGrammar,
		File: file,
		Line: number,
		Raw:  raw,
		Message: fmt.Sprintf(
			"line %d of file %q is invalid: must be blank, a top-level header (starting with %q), or an enumeration (starting with %s), but is %q",
			number, file, PrefixHeader, quoteAll(PrefixesEnumeration()), raw),
	}
}

func emptyContentError(file string, number int, raw string, kind LineKind) *ValidationError {
	return &ValidationError{
		Kind: ErrKindGrammar,
		File: file,
		Line: number,
		Raw:  raw,
		Message: fmt.Sprintf("line %d of file %q is invalid: %s has no content after its prefix, but is %q",
			number, file, kind, raw),
	}
}

func invalidEncodingError(file string, number int, raw string) *ValidationError {
	return &ValidationError{
		Kind:    ErrKindGrammar,
		File:    file,
		Line:    number,
		Raw:     raw,
		Message: fmt.Sprintf("line %d of file %q is not valid UTF-8", number, file),
	}
}

func missingHeaderError(file string, line Line) *ValidationError {
	return &ValidationError{
		Kind: ErrKindStructure,
		File: file,
		Line: line.Number,
		Raw:  line.Raw,
		Message: fmt.Sprintf("file %q must start with a top-level header (starting with %q), but line %d is an enumeration",
			file, PrefixHeader, line.Number),
	}
}

func emptyHeaderError(file string, header Line) *ValidationError {
	return &ValidationError{
		Kind:   ErrKindStructure,
		File:   file,
		Line:   header.Number,
		Raw:    header.Raw,
		Header: header.Content,
		Message: fmt.Sprintf("header %q at line %d of file %q is not followed by any content",
			header.Content, header.Number, file),
	}
}

// ReleaseNotFoundError is returned when a requested release is not in the master changelog.
type ReleaseNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *ReleaseNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("version %q not found (no releases in changelog)", e.Version)
	}
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " or ")
}
