package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/relkit/internal/release"
)

// releaseDate is the fake "today" of every CLI test.
var releaseDate = time.Date(2023, time.July, 2, 9, 30, 0, 0, time.UTC)

const testChangelog = `# Changelog

## Version 1.2.2 (Jun. 1st, 2023)

A bugfix release that comes with the following changes.

### Fixes

- Old fix

`

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// setupProject writes files into a temporary directory and makes it the
// working directory of the test.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	t.Chdir(dir)

	previous := releaseOptions
	releaseOptions = release.Options{Clock: clockwork.NewFakeClockAt(releaseDate)}
	t.Cleanup(func() { releaseOptions = previous })
	return dir
}

// standardProject returns the files of a project with valid fragments.
func standardProject() map[string]string {
	return map[string]string{
		"VERSION":               "1.3.0\n",
		"CHANGELOG.md":          testChangelog,
		".changelog-main.md":    "",
		".changelog-feature.md": "# Features\n- Added export\n",
		".changelog-bugfix.md":  "# Fixes\n- Fixed crash\n",
	}
}

// runCLI executes the command tree in-process without colors.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), append([]string{"--no-color"}, args...), &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
