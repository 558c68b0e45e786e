package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the relkit CLI.
// These templates ensure consistent, actionable error messages.

// VersionFileNotFound creates an error for a missing version file.
func VersionFileNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("version file not found: %s", path),
		"Run 'relkit init' to create the release metadata files",
		"Or set version_file in .relkit.yml (env: RELKIT_VERSION_FILE)",
	)
}

// ChangelogNotFound creates an error for a missing master changelog.
func ChangelogNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("changelog file not found: %s", path),
		"Run 'relkit init' to create a changelog with the default preamble",
		"Or set changelog_file in .relkit.yml (env: RELKIT_CHANGELOG_FILE)",
	)
}

// FragmentNotFound creates an error for a missing changelog fragment file.
func FragmentNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("changelog fragment not found: %s", path),
		"Create an empty file: touch "+path,
		"Or run 'relkit init' to create all fragment files",
	)
}

// ConfigNotFound creates an error for a --config file that does not exist.
func ConfigNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("config file not found: %s", path),
		"Check the path passed to --config",
		fmt.Sprintf("Or create it with: relkit --config %s init", path),
	)
}

// InvalidFragment creates an error for a malformed changelog fragment.
func InvalidFragment(message string) *CLIError {
	return NewValidationError(
		message,
		"Headers start with \"# \", entries with \"- \" or \"* \"; all other lines must be blank",
		"Every header needs at least one entry below it",
		"Check the fragment with: relkit changelog validate all",
	)
}

// InvalidVersion creates an error for a malformed version file.
func InvalidVersion(message string) *CLIError {
	return NewValidationError(
		message,
		"The version file must contain exactly one line: MAJOR.MINOR.PATCH or MAJOR.MINOR.PATCH.devN",
		"Example: 1.4.0 or 1.4.0.dev2",
	)
}

// InvalidReleaseKind creates an error for an unknown release kind argument.
func InvalidReleaseKind(provided, command string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid release kind: %s", provided),
		fmt.Sprintf("relkit changelog %s <major|minor|patch>", command),
		"Use major (alias main), minor (alias feature) or patch (alias bugfix)",
	)
}

// InvalidSegment creates an error for an unknown version segment argument.
func InvalidSegment(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid version segment: %s", provided),
		"relkit version increment <dev|patch|minor|major>",
		"dev bumps the development number, the others bump their segment and drop it",
	)
}

// ReleaseNotFound creates an error when a version has no section in the changelog.
func ReleaseNotFound(version string, available []string) *CLIError {
	remediation := []string{"Check the version argument (the \"v\" prefix is optional)"}
	if len(available) > 0 {
		remediation = append(remediation, "Available versions: "+strings.Join(available, ", "))
	}
	return NewArgumentError(fmt.Sprintf("version %q not found in changelog", version), remediation...)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"failed to load configuration",
		"Check .relkit.yml for YAML syntax errors",
		"Print the defaults with: relkit init --print-config",
	)
}

// FileNotWritable creates an error when a file cannot be written.
func FileNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}

// GitNotRepository creates an error when staging is requested outside a git repository.
func GitNotRepository() *CLIError {
	return NewPrerequisiteError(
		"not a git repository",
		"Initialize with: git init",
		"Or run the update without --stage",
	)
}
