// relkit - Release metadata maintenance
// Source: https://github.com/ariel-frischer/relkit

// Package config provides configuration management for relkit using koanf.
// Configuration is loaded with priority: environment variables > project config (.relkit.yml)
// > defaults. The legacy JSON format (.relkit.json) is still read with a deprecation warning.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrNotFound is returned when an explicitly requested config file does not exist.
var ErrNotFound = errors.New("config file not found")

// envPrefix is the prefix of environment variables overriding config keys.
const envPrefix = "RELKIT_"

// Fragments names the changelog fragment file of every release kind.
type Fragments struct {
	Main    string `koanf:"main" validate:"required"`
	Feature string `koanf:"feature" validate:"required"`
	Bugfix  string `koanf:"bugfix" validate:"required"`
}

// Configuration represents the relkit configuration.
// File paths are relative to Dir unless absolute.
type Configuration struct {
	VersionFile   string    `koanf:"version_file" validate:"required"`
	ChangelogFile string    `koanf:"changelog_file" validate:"required"`
	Fragments     Fragments `koanf:"fragments"`

	// StageFiles stages the changelog and cleared fragments in git after an update.
	StageFiles bool `koanf:"stage_files"`
	// ClearFragments empties the merged fragment files after an update.
	ClearFragments bool `koanf:"clear_fragments"`

	// Dir is the project directory paths are resolved against.
	Dir string `koanf:"-"`
	// Path is the config file the configuration was loaded from, or the file
	// init creates when it does not exist yet.
	Path string `koanf:"-"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .relkit.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
	// AllowMissing accepts an explicit ProjectConfigPath that does not exist
	// yet and falls back to the defaults.
	AllowMissing bool
}

// LoadWithOptions loads configuration from the project config and the environment.
// Priority: Environment variables > Project config > Defaults
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	configPath, err := loadProjectConfig(k, opts, warningWriter)
	if err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	cfg, err := finalizeConfig(k, configPath)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(configPath)
	cfg.Path = configPath
	return cfg, nil
}

// Default returns the default configuration rooted at dir.
func Default(dir string) *Configuration {
	k := koanf.New(".")
	loadDefaults(k)

	var cfg Configuration
	_ = k.Unmarshal("", &cfg) // defaults always unmarshal
	cfg.Dir = dir
	cfg.Path = filepath.Join(dir, ProjectConfigPath())
	return &cfg
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project config (YAML preferred, legacy JSON supported)
// and returns the path it was resolved from. A missing file is not an error.
func loadProjectConfig(k *koanf.Koanf, opts LoadOptions, warningWriter io.Writer) (string, error) {
	customPath, skipWarnings := opts.ProjectConfigPath, opts.SkipWarnings
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := legacyPathFor(yamlPath)

	yamlExists := fileExists(yamlPath)
	legacyExists := fileExists(legacyPath)

	switch {
	case yamlExists:
		if err := loadYAMLConfig(k, yamlPath); err != nil {
			return "", fmt.Errorf("loading project YAML config: %w", err)
		}
		warnLegacyExists(warningWriter, legacyPath, yamlPath, legacyExists, skipWarnings)
	case legacyExists:
		if err := loadLegacyJSONConfig(k, legacyPath, warningWriter, skipWarnings); err != nil {
			return "", fmt.Errorf("loading legacy project JSON config: %w", err)
		}
		return legacyPath, nil
	case customPath != "" && !opts.AllowMissing:
		return "", fmt.Errorf("%w: %s", ErrNotFound, customPath)
	}
	return yamlPath, nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// loadLegacyJSONConfig loads legacy JSON and warns about migration
func loadLegacyJSONConfig(k *koanf.Koanf, path string, warningWriter io.Writer, skipWarnings bool) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load legacy config %s: %w", path, err)
	}
	if !skipWarnings {
		fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", path)
		fmt.Fprintf(warningWriter, "  Rename it to %s and convert it to YAML.\n\n", ProjectConfigPath())
	}
	return nil
}

// warnLegacyExists warns if legacy JSON exists alongside new YAML
func warnLegacyExists(warningWriter io.Writer, legacyPath, yamlPath string, legacyExists, skipWarnings bool) {
	if legacyExists && !skipWarnings {
		fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n\n", legacyPath, yamlPath)
	}
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf, configPath string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, configPath); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: RELKIT_VERSION_FILE -> version_file, RELKIT_FRAGMENTS__MAIN -> fragments.main
func envTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// VersionPath returns the resolved path of the version file.
func (c *Configuration) VersionPath() string {
	return Resolve(c.Dir, c.VersionFile)
}

// ChangelogPath returns the resolved path of the master changelog.
func (c *Configuration) ChangelogPath() string {
	return Resolve(c.Dir, c.ChangelogFile)
}

// FragmentPath returns the resolved fragment file of a single release kind.
func (c *Configuration) FragmentPath(kind changelog.ReleaseKind) (string, error) {
	switch kind {
	case changelog.Major:
		return Resolve(c.Dir, c.Fragments.Main), nil
	case changelog.Minor:
		return Resolve(c.Dir, c.Fragments.Feature), nil
	case changelog.Patch:
		return Resolve(c.Dir, c.Fragments.Bugfix), nil
	default:
		return "", fmt.Errorf("unknown release kind %q", kind)
	}
}

// FragmentPaths returns the fragment files merged into a release of the given
// kind, in priority order: a major release merges main, feature and bugfix
// fragments, a minor release feature and bugfix, a patch release only bugfix.
func (c *Configuration) FragmentPaths(kind changelog.ReleaseKind) ([]string, error) {
	kinds := changelog.ReleaseKinds()
	for i, k := range kinds {
		if k != kind {
			continue
		}
		paths := make([]string, 0, len(kinds)-i)
		for _, included := range kinds[i:] {
			p, err := c.FragmentPath(included)
			if err != nil {
				return nil, err
			}
			paths = append(paths, p)
		}
		return paths, nil
	}
	return nil, fmt.Errorf("unknown release kind %q", kind)
}

// AllFragmentPaths returns the fragment files of all release kinds, main first.
func (c *Configuration) AllFragmentPaths() []string {
	paths, _ := c.FragmentPaths(changelog.Major) // Major is always known
	return paths
}

// Map returns the effective settings keyed like the project config file.
func (c *Configuration) Map() map[string]any {
	return map[string]any{
		"version_file":   c.VersionFile,
		"changelog_file": c.ChangelogFile,
		"fragments": map[string]any{
			"main":    c.Fragments.Main,
			"feature": c.Fragments.Feature,
			"bugfix":  c.Fragments.Bugfix,
		},
		"stage_files":     c.StageFiles,
		"clear_fragments": c.ClearFragments,
	}
}
