// Package release orchestrates relkit's release operations: validating
// changelog fragments, inserting a rendered release into the master
// changelog, and moving the version file through its transitions.
//
// A Service reads every input and validates it before the first write, so a
// failed operation leaves the project files untouched.
package release

import (
	"context"
	"errors"

	"github.com/chainguard-dev/clog"
	"github.com/jonboulle/clockwork"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/config"
	"github.com/ariel-frischer/relkit/internal/version"
)

// Service performs release operations on the files named by a configuration.
type Service struct {
	cfg   *config.Configuration
	clock clockwork.Clock
}

// Options configures a Service.
type Options struct {
	// Clock supplies the release date (default: the real clock).
	Clock clockwork.Clock
}

// NewService returns a Service operating on the files of cfg.
func NewService(cfg *config.Configuration, opts Options) *Service {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{cfg: cfg, clock: clock}
}

// Config returns the configuration the service operates on.
func (s *Service) Config() *config.Configuration {
	return s.cfg
}

// Validate parses the fragment file at path and reports the first violation.
func (s *Service) Validate(ctx context.Context, path string) error {
	changesets, err := changelog.ParseFile(path)
	if err != nil {
		return err
	}
	clog.FromContext(ctx).Debug("validated fragment", "path", path, "changesets", len(changesets))
	return nil
}

// ValidateAll validates the fragment files of every release kind.
// All files are checked; the returned error joins one error per invalid file.
func (s *Service) ValidateAll(ctx context.Context) error {
	var errs []error
	for _, path := range s.cfg.AllFragmentPaths() {
		if err := s.Validate(ctx, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Extract returns the body of the given version's section in the master changelog.
func (s *Service) Extract(ctx context.Context, v string) (string, error) {
	master, err := changelog.ReadMaster(s.cfg.ChangelogPath())
	if err != nil {
		return "", err
	}
	clog.FromContext(ctx).Debug("extracting release", "path", master.Path, "version", v)
	return master.Extract(v)
}

// versionFile returns the configured version file.
func (s *Service) versionFile() *version.File {
	return version.NewFile(s.cfg.VersionPath())
}
