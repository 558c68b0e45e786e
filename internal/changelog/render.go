package changelog

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	// PrefixRelease starts a release section in the master changelog.
	PrefixRelease = "## "
	// PrefixChangeset starts a changeset section inside a release.
	PrefixChangeset = "### "
	// PrefixItem starts a rendered enumeration item.
	PrefixItem = "- "
)

// RenderRelease writes the release entry in canonical Markdown:
//
//	## Version 1.2.0 (Jul. 2nd, 2023)
//
//	A feature release that comes with the following changes.
//
//	### Header
//
//	- item
//
// The entry ends with a blank line so that a following section stays separated.
func RenderRelease(r Release, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", formatReleaseHeader(r)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", formatReleaseSentence(r.Kind)); err != nil {
		return err
	}

	for _, cs := range r.Changesets {
		if err := renderChangeset(cs, w); err != nil {
			return fmt.Errorf("rendering changeset %q: %w", cs.Header, err)
		}
	}
	return nil
}

// RenderReleaseString is a convenience function that renders to a string.
func RenderReleaseString(r Release) string {
	var b strings.Builder
	_ = RenderRelease(r, &b) // strings.Builder never fails
	return b.String()
}

// String returns the canonical Markdown of the release.
func (r Release) String() string {
	return RenderReleaseString(r)
}

// formatReleaseHeader formats the release sub-header line.
func formatReleaseHeader(r Release) string {
	return fmt.Sprintf("%sVersion %s (%s)", PrefixRelease, r.Version, FormatDate(r.Date))
}

// formatReleaseSentence formats the prose line naming the release kind.
func formatReleaseSentence(kind ReleaseKind) string {
	return fmt.Sprintf("A %s release that comes with the following changes.", kind.Noun())
}

// renderChangeset writes a single changeset with its items followed by a blank line.
func renderChangeset(cs Changeset, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s%s\n\n", PrefixChangeset, cs.Header); err != nil {
		return err
	}
	for _, content := range cs.Contents {
		if _, err := fmt.Fprintf(w, "%s%s\n", PrefixItem, content); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// FormatDate formats a release date as "Jul. 2nd, 2023". May is written out
// in full and takes no period.
func FormatDate(t time.Time) string {
	month := t.Format("Jan.")
	if t.Month() == time.May {
		month = "May"
	}
	return fmt.Sprintf("%s %d%s, %d", month, t.Day(), ordinalSuffix(t.Day()), t.Year())
}

// ordinalSuffix returns the English ordinal suffix for a day of the month.
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
