package cli

import "fmt"

// Exit codes for the relkit CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates a malformed fragment, version file or config
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingFiles indicates a required project file does not exist
	ExitMissingFiles = 4
)

// exitError is a custom error type that carries an exit code.
// Commands return it after they have reported the failure themselves.
type exitError struct {
	code int
}

// NewExitError returns an error that makes Execute exit with code without
// printing anything further.
func NewExitError(code int) error {
	return &exitError{code: code}
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
