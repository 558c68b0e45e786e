package cli

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/config"
	clierrors "github.com/ariel-frischer/relkit/internal/errors"
	"github.com/ariel-frischer/relkit/internal/git"
	"github.com/ariel-frischer/relkit/internal/version"
)

// toCLIError converts an error returned by the release service into a
// CLIError with remediation. cfg is used to name missing project files.
func toCLIError(cfg *config.Configuration, err error) *clierrors.CLIError {
	if err == nil {
		return nil
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var (
		validationErr *changelog.ValidationError
		notFoundErr   *changelog.ReleaseNotFoundError
		formatErr     *version.FormatError
		shapeErr      *version.FileShapeError
		pathErr       *fs.PathError
	)
	switch {
	case errors.As(err, &validationErr):
		cliErr := clierrors.InvalidFragment(validationErr.Message)
		cliErr.Err = err
		return cliErr.WithLocation(validationErr.File, validationErr.Line, validationErr.Raw)
	case errors.As(err, &notFoundErr):
		cliErr := clierrors.ReleaseNotFound(notFoundErr.Version, notFoundErr.AvailableVersions)
		cliErr.Err = err
		return cliErr
	case errors.As(err, &formatErr):
		cliErr := clierrors.InvalidVersion(err.Error())
		cliErr.Err = err
		return cliErr
	case errors.As(err, &shapeErr):
		cliErr := clierrors.InvalidVersion(err.Error())
		cliErr.Err = err
		return cliErr.WithLocation(shapeErr.Path, 0, "")
	case errors.Is(err, git.ErrNotRepository):
		cliErr := clierrors.GitNotRepository()
		cliErr.Err = err
		return cliErr
	case errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr):
		cliErr := missingFileError(cfg, pathErr.Path)
		cliErr.Err = err
		return cliErr
	}
	return clierrors.Wrap(err, clierrors.Runtime)
}

// missingFileError names the role of a missing project file.
func missingFileError(cfg *config.Configuration, path string) *clierrors.CLIError {
	switch {
	case cfg != nil && path == cfg.VersionPath():
		return clierrors.VersionFileNotFound(path)
	case cfg != nil && path == cfg.ChangelogPath():
		return clierrors.ChangelogNotFound(path)
	case cfg != nil && slices.Contains(cfg.AllFragmentPaths(), path):
		return clierrors.FragmentNotFound(path)
	}
	return clierrors.NewPrerequisiteError("file not found: " + path)
}

// exitCodeFor maps an error category to the process exit code.
func exitCodeFor(err *clierrors.CLIError) int {
	switch err.Category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Prerequisite:
		return ExitMissingFiles
	default:
		return ExitValidationFailed
	}
}
