package changelog

import (
	"strings"
)

// releaseTitlePrefix is how every rendered release header starts.
const releaseTitlePrefix = PrefixRelease + "Version "

// ListReleases returns the versions of all release sections in the master
// changelog content, in the order they appear (newest first).
func ListReleases(content string) []string {
	var versions []string
	for _, line := range splitLines(content) {
		if v, ok := releaseVersion(line); ok {
			versions = append(versions, v)
		}
	}
	return versions
}

// ExtractRelease returns the body of the release section for the given
// version, without its header line and with surrounding blank lines trimmed.
// A leading "v" on the requested version is ignored.
func ExtractRelease(content, version string) (string, error) {
	want := NormalizeVersion(version)
	lines := splitLines(content)

	start := -1
	for i, line := range lines {
		if v, ok := releaseVersion(line); ok && v == want {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", &ReleaseNotFoundError{Version: version, AvailableVersions: ListReleases(content)}
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], PrefixRelease) {
			end = i
			break
		}
	}

	return strings.Trim(strings.Join(lines[start:end], "\n"), "\n") + "\n", nil
}

// NormalizeVersion removes a "v" prefix so that "v1.2.0" and "1.2.0" match.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}

// releaseVersion extracts the version from a "## Version X (date)" line.
func releaseVersion(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, releaseTitlePrefix)
	if !ok {
		return "", false
	}
	v, _, _ := strings.Cut(strings.TrimSpace(rest), " ")
	if v == "" {
		return "", false
	}
	return v, true
}
