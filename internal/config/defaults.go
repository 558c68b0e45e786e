package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# relkit configuration
# Every key can be overridden with a RELKIT_ environment variable,
# e.g. RELKIT_VERSION_FILE=VERSION or RELKIT_FRAGMENTS__MAIN=.changelog-main.md

version_file: VERSION                 # Single-line MAJOR.MINOR.PATCH[.devN] file
changelog_file: CHANGELOG.md          # Master changelog releases are inserted into

# Changelog fragment files collecting unreleased changes
fragments:
  main: .changelog-main.md            # Changes for the next major release
  feature: .changelog-feature.md      # Changes for the next feature release
  bugfix: .changelog-bugfix.md        # Changes for the next bugfix release

# Release behavior
stage_files: false                    # Stage changed files in git after an update
clear_fragments: false                # Empty the merged fragment files after an update
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"version_file":   "VERSION",
		"changelog_file": "CHANGELOG.md",
		// fragments: one file per release kind. A release merges its own
		// fragment and those of all smaller release kinds.
		"fragments.main":    ".changelog-main.md",
		"fragments.feature": ".changelog-feature.md",
		"fragments.bugfix":  ".changelog-bugfix.md",
		// stage_files: default for 'relkit changelog update --stage'.
		"stage_files": false,
		// clear_fragments: default for 'relkit changelog update --clear'.
		"clear_fragments": false,
	}
}
