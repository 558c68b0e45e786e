package config

import (
	"path/filepath"
)

// ProjectConfigPath returns the path to the project-level config file.
// This is always .relkit.yml relative to the current directory.
func ProjectConfigPath() string {
	return ".relkit.yml"
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON config file.
func LegacyProjectConfigPath() string {
	return ".relkit.json"
}

// legacyPathFor returns the JSON sibling of a YAML config path.
func legacyPathFor(yamlPath string) string {
	if yamlPath == ProjectConfigPath() {
		return LegacyProjectConfigPath()
	}
	ext := filepath.Ext(yamlPath)
	return yamlPath[:len(yamlPath)-len(ext)] + ".json"
}

// Resolve returns p unchanged if it is absolute, otherwise joined onto dir.
func Resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) || dir == "" || dir == "." {
		return p
	}
	return filepath.Join(dir, p)
}
