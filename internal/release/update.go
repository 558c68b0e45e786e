package release

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/fsutil"
)

// UpdateOptions configures a changelog update.
type UpdateOptions struct {
	// DryRun renders the release without writing any file.
	DryRun bool
	// ClearFragments empties the merged fragment files after the changelog
	// has been written.
	ClearFragments bool
}

// UpdateResult describes a changelog update.
type UpdateResult struct {
	Release  changelog.Release
	Rendered string
	// Changelog is the path of the master changelog.
	Changelog string
	// Fragments are the merged fragment files, in priority order.
	Fragments []string
	// Written lists every file that was modified, empty on a dry run.
	Written []string
}

// Update merges the fragment files of the release kind into a release for the
// current version and inserts it into the master changelog.
func (s *Service) Update(ctx context.Context, kind changelog.ReleaseKind, opts UpdateOptions) (*UpdateResult, error) {
	paths, err := s.cfg.FragmentPaths(kind)
	if err != nil {
		return nil, err
	}
	return s.UpdateWithFiles(ctx, kind, opts, paths...)
}

// UpdateWithFiles is Update with an explicit list of fragment files in
// priority order.
func (s *Service) UpdateWithFiles(ctx context.Context, kind changelog.ReleaseKind, opts UpdateOptions, paths ...string) (*UpdateResult, error) {
	log := clog.FromContext(ctx)

	r, err := s.buildRelease(ctx, kind, paths)
	if err != nil {
		return nil, err
	}

	changelogPath := s.cfg.ChangelogPath()
	master, err := changelog.ReadMaster(changelogPath)
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{
		Release:   r,
		Rendered:  changelog.RenderReleaseString(r),
		Changelog: changelogPath,
		Fragments: paths,
	}
	if opts.DryRun {
		log.Debug("dry run, changelog not written", "path", changelogPath)
		return result, nil
	}

	if err := master.Insert(result.Rendered); err != nil {
		return nil, err
	}
	result.Written = append(result.Written, changelogPath)
	log.Infof("inserted version %s into %s", r.Version, changelogPath)

	if opts.ClearFragments {
		for _, path := range paths {
			if err := fsutil.AtomicWriteFile(path, nil); err != nil {
				return result, fmt.Errorf("clearing fragment %s: %w", path, err)
			}
			result.Written = append(result.Written, path)
			log.Debug("cleared fragment", "path", path)
		}
	}
	return result, nil
}

// Preview builds the release an update of the given kind would insert,
// without requiring the master changelog or writing anything.
func (s *Service) Preview(ctx context.Context, kind changelog.ReleaseKind) (changelog.Release, error) {
	paths, err := s.cfg.FragmentPaths(kind)
	if err != nil {
		return changelog.Release{}, err
	}
	return s.buildRelease(ctx, kind, paths)
}

// buildRelease validates and merges the fragments and reads the current version.
func (s *Service) buildRelease(ctx context.Context, kind changelog.ReleaseKind, paths []string) (changelog.Release, error) {
	changesets, err := changelog.MergeFiles(paths...)
	if err != nil {
		return changelog.Release{}, err
	}
	clog.FromContext(ctx).Debug("merged fragments", "files", len(paths), "changesets", len(changesets))

	v, err := s.CurrentVersion(ctx)
	if err != nil {
		return changelog.Release{}, err
	}

	return changelog.Release{
		Version:    v,
		Date:       s.clock.Now(),
		Kind:       kind,
		Changesets: changesets,
	}, nil
}
