package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// kindStyles maps release kinds to the color of their header.
var kindStyles = map[ReleaseKind]*color.Color{
	Major: color.New(color.FgRed, color.Bold),
	Minor: color.New(color.FgBlue, color.Bold),
	Patch: color.New(color.FgYellow, color.Bold),
}

var (
	changesetStyle = color.New(color.FgCyan, color.Bold)
	bulletStyle    = color.New(color.FgGreen)
	dimStyle       = color.New(color.Faint)
)

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Emit canonical Markdown without colors
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes a release preview to the writer. With Plain set the
// output is exactly the Markdown that would be inserted into the changelog.
func FormatTerminal(r Release, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		return RenderRelease(r, w)
	}

	width := resolveWidth(opts.MaxWidth)
	style := kindStyles[r.Kind]
	if style == nil {
		style = color.New(color.Bold)
	}

	if _, err := fmt.Fprintf(w, "%s\n", style.Sprint(formatReleaseHeader(r))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", dimStyle.Sprint(formatReleaseSentence(r.Kind))); err != nil {
		return err
	}

	if len(r.Changesets) == 0 {
		_, err := fmt.Fprintf(w, "\n%s\n", dimStyle.Sprint("(no changes)"))
		return err
	}

	for _, cs := range r.Changesets {
		if err := writeChangesetSection(cs, w, width); err != nil {
			return fmt.Errorf("formatting changeset %q: %w", cs.Header, err)
		}
	}
	return nil
}

// writeChangesetSection writes a changeset header and its wrapped items.
func writeChangesetSection(cs Changeset, w io.Writer, width int) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", changesetStyle.Sprint(cs.Header)); err != nil {
		return err
	}

	prefix := "  • "
	for _, content := range cs.Contents {
		wrapped := wrapText(content, width-utf8.RuneCountInString(prefix), "    ")
		if _, err := fmt.Fprintf(w, "  %s %s\n", bulletStyle.Sprint("•"), wrapped); err != nil {
			return err
		}
	}
	return nil
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth runes, using indent for
// continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	remaining := []rune(text)
	if maxWidth <= 0 || len(remaining) <= maxWidth {
		return text
	}

	var lines []string
	for len(remaining) > maxWidth {
		// Break at the last space within maxWidth
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, string(remaining[:breakPoint]))
		remaining = []rune(strings.TrimLeft(string(remaining[breakPoint:]), " "))
	}

	if len(remaining) > 0 {
		lines = append(lines, string(remaining))
	}

	return strings.Join(lines, "\n"+indent)
}

// FormatSummary returns a one-line summary of a release for status output.
func FormatSummary(r Release) string {
	return fmt.Sprintf("Version %s (%s release, %d changesets, %d entries)",
		r.Version, r.Kind.Noun(), len(r.Changesets), r.EntryCount())
}
