package changelog

import (
	_ "embed"
)

//go:embed template.md
var changelogTemplate string

// Template returns the preamble used when creating a new master changelog.
func Template() string {
	return changelogTemplate
}
