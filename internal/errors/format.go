package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Color functions with auto-detection for terminal support.
	// These fall back gracefully when colors are unavailable.
	errorLabel    = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg      = color.New(color.FgRed).SprintFunc()
	fixLabel      = color.New(color.FgGreen, color.Bold).SprintFunc()
	usageLabel    = color.New(color.FgCyan, color.Bold).SprintFunc()
	usageText     = color.New(color.FgCyan).SprintFunc()
	locationLabel = color.New(color.FgMagenta).SprintFunc()
	excerptText   = color.New(color.Faint).SprintFunc()
	bullet        = color.New(color.FgGreen).SprintFunc()
	categoryFmt   = color.New(color.FgYellow).SprintFunc()
)

// FormatError formats a CLIError for display in the terminal.
// Colors are used unless disabled globally (NO_COLOR, --no-color, non-TTY).
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, !color.NoColor)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, false)
}

// styler applies fn only when colors are enabled.
type styler func(a ...interface{}) string

func (s styler) on(useColors bool, text string) string {
	if useColors {
		return s(text)
	}
	return text
}

func formatError(err *CLIError, useColors bool) string {
	var sb strings.Builder

	// Error category and message
	sb.WriteString(styler(errorLabel).on(useColors, "Error"))
	sb.WriteString(" [")
	sb.WriteString(styler(categoryFmt).on(useColors, err.Category.String()))
	sb.WriteString("]: ")
	sb.WriteString(styler(errorMsg).on(useColors, err.Message))
	sb.WriteString("\n")

	// Offending input
	if err.Location != "" {
		sb.WriteString("  ")
		sb.WriteString(styler(locationLabel).on(useColors, "at "+err.Location))
		sb.WriteString("\n")
	}
	if err.Excerpt != "" {
		sb.WriteString("  ")
		sb.WriteString(styler(excerptText).on(useColors, "> "+err.Excerpt))
		sb.WriteString("\n")
	}

	// Correct usage (for argument errors)
	if err.Usage != "" {
		sb.WriteString("\n")
		sb.WriteString(styler(usageLabel).on(useColors, "Usage: "))
		sb.WriteString(styler(usageText).on(useColors, err.Usage))
		sb.WriteString("\n")
	}

	// Remediation steps
	if len(err.Remediation) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styler(fixLabel).on(useColors, "To fix this:"))
		sb.WriteString("\n")
		for _, step := range err.Remediation {
			sb.WriteString("  ")
			sb.WriteString(styler(bullet).on(useColors, "•"))
			sb.WriteString(" ")
			sb.WriteString(step)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FprintError prints a formatted CLIError to the given writer. Writers that
// are not terminals get the plain rendering, so redirected stderr never
// carries escape codes even when stdout is a terminal.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if isTerminal(w) {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
