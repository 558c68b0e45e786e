// Package git stages files touched by a release using go-git.
// Only the repository discovery and index operations relkit needs are exposed;
// no git binary is required.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when a path is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// openRepo opens the git repository containing path.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
// If path is empty, the current working directory is used.
func openRepo(ctx context.Context, path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	clog.FromContext(ctx).Debug("opening git repository", "path", path)
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRepository)
	}
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsRepository reports whether path is within a git repository.
func IsRepository(ctx context.Context, path string) bool {
	_, err := openRepo(ctx, path)
	return err == nil
}

// StageFiles adds the given files to the index of the repository containing dir.
// Paths may be absolute or relative to dir; every path must lie inside the worktree.
func StageFiles(ctx context.Context, dir string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	repo, err := openRepo(ctx, dir)
	if err != nil {
		return err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}
	root := canonical(worktree.Filesystem.Root())

	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		rel, err := filepath.Rel(root, canonical(p))
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("staging %s: path is outside the repository %s", p, root)
		}

		rel = filepath.ToSlash(rel)
		if _, err := worktree.Add(rel); err != nil {
			return fmt.Errorf("staging %s: %w", rel, err)
		}
		clog.FromContext(ctx).Debug("staged file", "path", rel)
	}
	return nil
}

// canonical resolves symlinks so temp directories and worktree roots compare equal.
// Paths that cannot be resolved are returned cleaned and absolute.
func canonical(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = p
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}
