package release

import (
	"context"

	"github.com/chainguard-dev/clog"

	"github.com/ariel-frischer/relkit/internal/version"
)

// CurrentVersion reads the version file.
func (s *Service) CurrentVersion(ctx context.Context) (version.Version, error) {
	f := s.versionFile()
	v, err := f.Read()
	if err != nil {
		return version.Version{}, err
	}
	clog.FromContext(ctx).Debug("read version", "path", f.Path, "version", v.String())
	return v, nil
}

// DropDevelopment removes the development segment and persists the result.
func (s *Service) DropDevelopment(ctx context.Context) (version.Version, version.Version, error) {
	return s.transition(ctx, "drop-dev", func(v version.Version) (version.Version, error) {
		return v.DropDevelopment(), nil
	})
}

// IncrementDevelopment bumps or adds the development segment and persists the result.
func (s *Service) IncrementDevelopment(ctx context.Context) (version.Version, version.Version, error) {
	return s.Increment(ctx, version.SegmentDevelopment)
}

// IncrementPatch bumps the patch segment and persists the result.
func (s *Service) IncrementPatch(ctx context.Context) (version.Version, version.Version, error) {
	return s.Increment(ctx, version.SegmentPatch)
}

// IncrementMinor bumps the minor segment and persists the result.
func (s *Service) IncrementMinor(ctx context.Context) (version.Version, version.Version, error) {
	return s.Increment(ctx, version.SegmentMinor)
}

// IncrementMajor bumps the major segment and persists the result.
func (s *Service) IncrementMajor(ctx context.Context) (version.Version, version.Version, error) {
	return s.Increment(ctx, version.SegmentMajor)
}

// Increment bumps the given segment and persists the result.
// It returns the previous and the new version.
func (s *Service) Increment(ctx context.Context, seg version.Segment) (version.Version, version.Version, error) {
	return s.transition(ctx, "increment-"+string(seg), func(v version.Version) (version.Version, error) {
		return v.Increment(seg)
	})
}

// transition applies next to the current version and writes the result. The
// file is left untouched when the version does not change.
func (s *Service) transition(ctx context.Context, name string, next func(version.Version) (version.Version, error)) (version.Version, version.Version, error) {
	old, err := s.CurrentVersion(ctx)
	if err != nil {
		return version.Version{}, version.Version{}, err
	}

	updated, err := next(old)
	if err != nil {
		return version.Version{}, version.Version{}, err
	}
	if updated.Equal(old) {
		clog.FromContext(ctx).Debug("version unchanged, file not rewritten", "op", name, "version", old.String())
		return old, updated, nil
	}
	if err := s.versionFile().Write(updated); err != nil {
		return version.Version{}, version.Version{}, err
	}

	clog.FromContext(ctx).Debug("version transition", "op", name, "from", old.String(), "to", updated.String())
	return old, updated, nil
}
