package changelog

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ariel-frischer/relkit/internal/version"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRelease() Release {
	return Release{
		Version: version.MustParse("0.3.0"),
		Date:    time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Kind:    Minor,
		Changesets: []Changeset{
			{Header: "Features", Contents: []string{"Added a very long entry that will certainly need to be wrapped", "Short"}},
		},
	}
}

func TestFormatTerminal_PlainIsMarkdown(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, FormatTerminal(sampleRelease(), &b, FormatOptions{Plain: true}))
	assert.Equal(t, RenderReleaseString(sampleRelease()), b.String())
}

func TestFormatTerminal_Styled(t *testing.T) {
	// Not parallel: toggles the global color switch.
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var b strings.Builder
	require.NoError(t, FormatTerminal(sampleRelease(), &b, FormatOptions{MaxWidth: 40}))

	out := b.String()
	assert.Contains(t, out, "## Version 0.3.0 (May 1st, 2024)")
	assert.Contains(t, out, "A feature release")
	assert.Contains(t, out, "\nFeatures\n")
	assert.Contains(t, out, "  • Short\n")
	assert.Contains(t, out, "\n    ", "long entries should wrap with an indent")
}

func TestFormatTerminal_WrapsToBulletColumns(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	r := sampleRelease()
	r.Changesets = []Changeset{{Header: "Fixes", Contents: []string{"abcdefghij klm"}}}

	var b strings.Builder
	require.NoError(t, FormatTerminal(r, &b, FormatOptions{MaxWidth: 14}))
	assert.Contains(t, b.String(), "  • abcdefghij\n    klm\n")
}

func TestFormatTerminal_NoChanges(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	r := sampleRelease()
	r.Changesets = nil

	var b strings.Builder
	require.NoError(t, FormatTerminal(r, &b, FormatOptions{MaxWidth: 80}))
	assert.Contains(t, b.String(), "(no changes)")
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text     string
		width    int
		expected string
	}{
		"fits":            {text: "short text", width: 20, expected: "short text"},
		"zero width":      {text: "anything goes", width: 0, expected: "anything goes"},
		"wraps at space":  {text: "one two three", width: 8, expected: "one two\n  three"},
		"no space":        {text: "abcdefghij", width: 4, expected: "abcd\n  efgh\n  ij"},
		"multi-byte":      {text: strings.Repeat("ü", 10), width: 4, expected: "üüüü\n  üüüü\n  üü"},
		"multi-byte fits": {text: "Überarbeitete Änderung", width: 22, expected: "Überarbeitete Änderung"},
		"multi-byte wraps at space": {
			text:     "größere Änderungen über Nacht",
			width:    12,
			expected: "größere\n  Änderungen\n  über Nacht",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := wrapText(tt.text, tt.width, "  ")
			assert.True(t, utf8.ValidString(got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Version 0.3.0 (feature release, 1 changesets, 2 entries)", FormatSummary(sampleRelease()))
}
