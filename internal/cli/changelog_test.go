// Package cli tests the changelog commands for validating, previewing,
// updating and extracting.
// Related: internal/cli/changelog.go, internal/cli/changelog_validate.go,
//
//	internal/cli/changelog_update.go, internal/cli/changelog_preview.go,
//	internal/cli/changelog_extract.go
//
// Tags: cli, changelog, validate, update, preview, extract
package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangelogValidate(t *testing.T) {
	tests := map[string]struct {
		files      map[string]string
		args       []string
		wantCode   int
		wantStdout []string
		wantStderr []string
	}{
		"all fragments valid": {
			files:      standardProject(),
			wantCode:   ExitSuccess,
			wantStdout: []string{"✓ .changelog-main.md", "✓ .changelog-feature.md", "✓ .changelog-bugfix.md"},
		},
		"single kind keyword": {
			files:      standardProject(),
			args:       []string{"bugfix"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"✓ .changelog-bugfix.md"},
		},
		"explicit path": {
			files:      map[string]string{"notes.md": "# Notes\n* one\n"},
			args:       []string{"notes.md"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"✓ notes.md"},
		},
		"grammar violation names file and line": {
			files: map[string]string{
				".changelog-main.md":    "",
				".changelog-feature.md": "# Features\n- ok\n+ not an entry\n",
				".changelog-bugfix.md":  "",
			},
			args:       []string{"all"},
			wantCode:   ExitValidationFailed,
			wantStdout: []string{"✗ .changelog-feature.md", "1 of 3 files invalid"},
			wantStderr: []string{"Validation Error", "at .changelog-feature.md:3", "> + not an entry"},
		},
		"enumeration before header": {
			files:      map[string]string{"notes.md": "- orphan\n"},
			args:       []string{"notes.md"},
			wantCode:   ExitValidationFailed,
			wantStderr: []string{"at notes.md:1", "must start with a top-level header"},
		},
		"header at end of file": {
			files:      map[string]string{"notes.md": "# Features\n- a\n# Fixes\n"},
			args:       []string{"notes.md"},
			wantCode:   ExitValidationFailed,
			wantStderr: []string{"at notes.md:3", "not followed by any content"},
		},
		"missing file": {
			files:      map[string]string{},
			args:       []string{"bugfix"},
			wantCode:   ExitMissingFiles,
			wantStderr: []string{"changelog fragment not found: .changelog-bugfix.md", "relkit init"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setupProject(t, tt.files)

			res := runCLI(t, append([]string{"changelog", "validate"}, tt.args...)...)
			assert.Equal(t, tt.wantCode, res.code, "stderr: %s", res.stderr)
			for _, want := range tt.wantStdout {
				assert.Contains(t, res.stdout, want)
			}
			for _, want := range tt.wantStderr {
				assert.Contains(t, res.stderr, want)
			}
		})
	}
}

func TestChangelogUpdate(t *testing.T) {
	setupProject(t, standardProject())

	res := runCLI(t, "changelog", "update", "minor")
	require.Equal(t, ExitSuccess, res.code, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "✓ Inserted Version 1.3.0 (feature release, 2 changesets, 2 entries) into CHANGELOG.md")

	want := strings.Replace(testChangelog, "## Version 1.2.2", `## Version 1.3.0 (Jul. 2nd, 2023)

A feature release that comes with the following changes.

### Features

- Added export

### Fixes

- Fixed crash

## Version 1.2.2`, 1)
	if diff := cmp.Diff(want, readFile(t, "CHANGELOG.md")); diff != "" {
		t.Errorf("changelog mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "# Fixes\n- Fixed crash\n", readFile(t, ".changelog-bugfix.md"), "fragments are kept without --clear")
}

func TestChangelogUpdate_DryRun(t *testing.T) {
	setupProject(t, standardProject())

	res := runCLI(t, "changelog", "update", "bugfix", "--dry-run")
	require.Equal(t, ExitSuccess, res.code, "stderr: %s", res.stderr)

	assert.Equal(t, "## Version 1.3.0 (Jul. 2nd, 2023)\n\nA bugfix release that comes with the following changes.\n\n### Fixes\n\n- Fixed crash\n\n", res.stdout)
	assert.Equal(t, testChangelog, readFile(t, "CHANGELOG.md"))
}

func TestChangelogUpdate_Clear(t *testing.T) {
	tests := map[string]struct {
		config string
		args   []string
	}{
		"flag":   {args: []string{"--clear"}},
		"config": {config: "clear_fragments: true\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			files := standardProject()
			if tt.config != "" {
				files[".relkit.yml"] = tt.config
			}
			setupProject(t, files)

			res := runCLI(t, append([]string{"changelog", "update", "minor"}, tt.args...)...)
			require.Equal(t, ExitSuccess, res.code, "stderr: %s", res.stderr)

			assert.Contains(t, res.stdout, "✓ Cleared .changelog-feature.md")
			assert.Empty(t, readFile(t, ".changelog-feature.md"))
			assert.Empty(t, readFile(t, ".changelog-bugfix.md"))
		})
	}
}

func TestChangelogUpdate_ClearOverriddenByFlag(t *testing.T) {
	files := standardProject()
	files[".relkit.yml"] = "clear_fragments: true\n"
	setupProject(t, files)

	res := runCLI(t, "changelog", "update", "patch", "--clear=false")
	require.Equal(t, ExitSuccess, res.code, "stderr: %s", res.stderr)
	assert.NotEmpty(t, readFile(t, ".changelog-bugfix.md"))
}

func TestChangelogUpdate_Stage(t *testing.T) {
	dir := setupProject(t, standardProject())
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	res := runCLI(t, "changelog", "update", "patch", "--stage", "--clear")
	require.Equal(t, ExitSuccess, res.code, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "✓ Staged 2 files")

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	status, err := wt.Status()
	require.NoError(t, err)
	assert.Equal(t, git.Added, status.File("CHANGELOG.md").Staging)
	assert.Equal(t, git.Added, status.File(".changelog-bugfix.md").Staging)
	assert.Equal(t, git.Untracked, status.File("VERSION").Staging)
}

func TestChangelogUpdate_StageOutsideRepository(t *testing.T) {
	setupProject(t, standardProject())

	res := runCLI(t, "changelog", "update", "patch", "--stage")
	assert.Equal(t, ExitMissingFiles, res.code)
	assert.Contains(t, res.stderr, "not a git repository")
	assert.Equal(t, testChangelog, readFile(t, "CHANGELOG.md"), "nothing is written")
}

func TestChangelogUpdate_Failures(t *testing.T) {
	tests := map[string]struct {
		modify     func(files map[string]string)
		args       []string
		wantCode   int
		wantStderr []string
	}{
		"invalid release kind": {
			args:       []string{"hotfix"},
			wantCode:   ExitInvalidArguments,
			wantStderr: []string{"invalid release kind: hotfix", "Usage: relkit changelog update"},
		},
		"invalid fragment": {
			modify: func(files map[string]string) {
				files[".changelog-bugfix.md"] = "# Fixes\n\n# More\n- x\n"
			},
			args:       []string{"patch"},
			wantCode:   ExitValidationFailed,
			wantStderr: []string{"at .changelog-bugfix.md:1", "> # Fixes"},
		},
		"invalid version": {
			modify:     func(files map[string]string) { files["VERSION"] = "1.3.0.beta1\n" },
			args:       []string{"patch"},
			wantCode:   ExitValidationFailed,
			wantStderr: []string{"1.3.0.beta1", "MAJOR.MINOR.PATCH"},
		},
		"missing changelog": {
			modify:     func(files map[string]string) { delete(files, "CHANGELOG.md") },
			args:       []string{"patch"},
			wantCode:   ExitMissingFiles,
			wantStderr: []string{"changelog file not found: CHANGELOG.md"},
		},
		"missing version file": {
			modify:     func(files map[string]string) { delete(files, "VERSION") },
			args:       []string{"patch"},
			wantCode:   ExitMissingFiles,
			wantStderr: []string{"version file not found: VERSION"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			files := standardProject()
			if tt.modify != nil {
				tt.modify(files)
			}
			setupProject(t, files)

			res := runCLI(t, append([]string{"changelog", "update"}, tt.args...)...)
			assert.Equal(t, tt.wantCode, res.code)
			for _, want := range tt.wantStderr {
				assert.Contains(t, res.stderr, want)
			}
			if _, ok := files["CHANGELOG.md"]; ok {
				assert.Equal(t, testChangelog, readFile(t, "CHANGELOG.md"))
			}
		})
	}
}

func TestChangelogPreview(t *testing.T) {
	setupProject(t, standardProject())
	require.NoError(t, os.Remove("CHANGELOG.md"))

	res := runCLI(t, "changelog", "preview", "minor", "--plain")
	require.Equal(t, ExitSuccess, res.code, "stderr: %s", res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "## Version 1.3.0 (Jul. 2nd, 2023)\n"))
	assert.Contains(t, res.stdout, "### Features\n\n- Added export\n")

	res = runCLI(t, "changelog", "preview", "feature")
	require.Equal(t, ExitSuccess, res.code, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "Added export")
	assert.Contains(t, res.stdout, "Version 1.3.0 (feature release, 2 changesets, 2 entries)")
}

func TestChangelogExtract(t *testing.T) {
	setupProject(t, standardProject())

	tests := map[string]struct {
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		"with v prefix": {
			args:       []string{"v1.2.2"},
			wantCode:   ExitSuccess,
			wantStdout: "A bugfix release that comes with the following changes.\n\n### Fixes\n\n- Old fix\n",
		},
		"unknown version": {
			args:       []string{"9.9.9"},
			wantCode:   ExitInvalidArguments,
			wantStderr: "Available versions: 1.2.2",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := runCLI(t, append([]string{"changelog", "extract"}, tt.args...)...)
			assert.Equal(t, tt.wantCode, res.code)
			assert.Equal(t, tt.wantStdout, res.stdout)
			assert.Contains(t, res.stderr, tt.wantStderr)
		})
	}
}
