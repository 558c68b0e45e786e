package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relkit/internal/config"
	clierrors "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/release"
)

// releaseOptions is the service configuration used by commands; tests replace
// the clock.
var releaseOptions release.Options

// loadService loads the project configuration and returns a release service
// operating on it.
func loadService(cmd *cobra.Command) (*release.Service, error) {
	return newService(cmd, config.LoadOptions{})
}

// newService is loadService with extra load options; the config path and
// warning writer always come from the command line.
func newService(cmd *cobra.Command, opts config.LoadOptions) (*release.Service, error) {
	opts.ProjectConfigPath = configPathFlag
	opts.WarningWriter = cmd.ErrOrStderr()

	cfg, err := config.LoadWithOptions(opts)
	if errors.Is(err, config.ErrNotFound) {
		return nil, clierrors.ConfigNotFound(configPathFlag)
	}
	if err != nil {
		return nil, clierrors.ConfigParseError(err)
	}
	return release.NewService(cfg, releaseOptions), nil
}
