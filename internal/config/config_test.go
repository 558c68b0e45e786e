package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(dir, ".relkit.yml"),
		SkipWarnings:      true,
	})
	require.ErrorIs(t, err, ErrNotFound, "an explicit config path must exist")
	assert.Nil(t, cfg)

	t.Chdir(dir)
	cfg, err = LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "VERSION", cfg.VersionFile)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogFile)
	assert.Equal(t, Fragments{
		Main:    ".changelog-main.md",
		Feature: ".changelog-feature.md",
		Bugfix:  ".changelog-bugfix.md",
	}, cfg.Fragments)
	assert.False(t, cfg.StageFiles)
	assert.False(t, cfg.ClearFragments)
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, ".relkit.yml", cfg.Path)
}

func TestLoad_AllowMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sub", "custom.yml")

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true, AllowMissing: true})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, filepath.Dir(path), cfg.Dir)
	assert.Equal(t, "VERSION", cfg.VersionFile)
}

func TestLoad_ProjectYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".relkit.yml", `
version_file: version.txt
fragments:
  main: changes/main.md
stage_files: true
`)

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)

	assert.Equal(t, "version.txt", cfg.VersionFile)
	assert.Equal(t, "changes/main.md", cfg.Fragments.Main)
	assert.Equal(t, ".changelog-feature.md", cfg.Fragments.Feature, "unset keys keep their defaults")
	assert.True(t, cfg.StageFiles)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "version.txt"), cfg.VersionPath())
	assert.Equal(t, filepath.Join(dir, "CHANGELOG.md"), cfg.ChangelogPath())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".relkit.yml", "version_file: from-file\n")

	t.Setenv("RELKIT_VERSION_FILE", "from-env")
	t.Setenv("RELKIT_FRAGMENTS__BUGFIX", "fixes.md")
	t.Setenv("RELKIT_CLEAR_FRAGMENTS", "true")

	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.VersionFile)
	assert.Equal(t, "fixes.md", cfg.Fragments.Bugfix)
	assert.True(t, cfg.ClearFragments)
}

func TestLoad_LegacyJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".relkit.json", `{"changelog_file": "HISTORY.md"}`)

	var warnings bytes.Buffer
	cfg, err := LoadWithOptions(LoadOptions{
		ProjectConfigPath: filepath.Join(dir, ".relkit.yml"),
		WarningWriter:     &warnings,
	})
	require.NoError(t, err)

	assert.Equal(t, "HISTORY.md", cfg.ChangelogFile)
	assert.Contains(t, warnings.String(), "deprecated JSON config")
}

func TestLoad_LegacyJSONIgnoredWhenYAMLExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".relkit.yml", "changelog_file: FROM_YAML.md\n")
	writeFile(t, dir, ".relkit.json", `{"changelog_file": "FROM_JSON.md"}`)

	var warnings bytes.Buffer
	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, WarningWriter: &warnings})
	require.NoError(t, err)

	assert.Equal(t, "FROM_YAML.md", cfg.ChangelogFile)
	assert.Contains(t, warnings.String(), "Legacy JSON config found")
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := map[string]struct {
		content     string
		errContains string
	}{
		"yaml syntax error": {
			content:     "version_file: [unclosed\n",
			errContains: "validating YAML syntax",
		},
		"empty required value": {
			content:     "changelog_file: \"\"\n",
			errContains: "field 'changelog_file': is required",
		},
		"empty nested value": {
			content:     "fragments:\n  feature: \"\"\n",
			errContains: "field 'fragments.feature': is required",
		},
		"fragment equals changelog": {
			content:     "fragments:\n  bugfix: CHANGELOG.md\n",
			errContains: "must differ from the version and changelog files",
		},
		"duplicate fragment": {
			content:     "fragments:\n  main: same.md\n  feature: same.md\n",
			errContains: "configured more than once",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), ".relkit.yml", tt.content)

			_, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestFragmentPaths(t *testing.T) {
	t.Parallel()

	cfg := Default("/project")

	tests := map[string]struct {
		kind changelog.ReleaseKind
		want []string
	}{
		"major merges all fragments": {
			kind: changelog.Major,
			want: []string{"/project/.changelog-main.md", "/project/.changelog-feature.md", "/project/.changelog-bugfix.md"},
		},
		"minor merges feature and bugfix": {
			kind: changelog.Minor,
			want: []string{"/project/.changelog-feature.md", "/project/.changelog-bugfix.md"},
		},
		"patch merges bugfix only": {
			kind: changelog.Patch,
			want: []string{"/project/.changelog-bugfix.md"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := cfg.FragmentPaths(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := cfg.FragmentPaths(changelog.ReleaseKind("hotfix"))
	assert.Error(t, err)
	assert.Equal(t, 3, len(cfg.AllFragmentPaths()))
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "version_file", envTransform("RELKIT_VERSION_FILE"))
	assert.Equal(t, "fragments.main", envTransform("RELKIT_FRAGMENTS__MAIN"))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "VERSION", Resolve(".", "VERSION"))
	assert.Equal(t, "VERSION", Resolve("", "VERSION"))
	assert.Equal(t, filepath.Join("a", "VERSION"), Resolve("a", "VERSION"))
	assert.Equal(t, "/abs/VERSION", Resolve("a", "/abs/VERSION"))
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, ".relkit.yml", GetDefaultConfigTemplate())

	require.NoError(t, ValidateYAMLSyntax(path))
	cfg, err := LoadWithOptions(LoadOptions{ProjectConfigPath: path, SkipWarnings: true})
	require.NoError(t, err)
	assert.Equal(t, Default(dir).Fragments, cfg.Fragments)
}
