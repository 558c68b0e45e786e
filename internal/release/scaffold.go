package release

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/chainguard-dev/clog"

	"github.com/ariel-frischer/relkit/internal/changelog"
	"github.com/ariel-frischer/relkit/internal/config"
	"github.com/ariel-frischer/relkit/internal/fsutil"
	"github.com/ariel-frischer/relkit/internal/version"
)

// InitialVersion is written to a freshly scaffolded version file.
var InitialVersion = version.MustParse("0.1.0.dev1")

// ScaffoldResult reports what happened to a single project file.
type ScaffoldResult struct {
	Path    string
	Created bool
}

// ScaffoldError reports a project file that could not be created.
type ScaffoldError struct {
	Path string
	Err  error
}

func (e *ScaffoldError) Error() string {
	return fmt.Sprintf("creating %s: %v", e.Path, e.Err)
}

func (e *ScaffoldError) Unwrap() error {
	return e.Err
}

type scaffoldFile struct {
	path    string
	content string
}

// Scaffold creates the project config, version file, master changelog and
// empty fragment files that do not exist yet. Existing files are left as is.
func (s *Service) Scaffold(ctx context.Context) ([]ScaffoldResult, error) {
	files := []scaffoldFile{
		{s.configPath(), config.GetDefaultConfigTemplate()},
		{s.cfg.VersionPath(), InitialVersion.String() + "\n"},
		{s.cfg.ChangelogPath(), changelog.Template()},
	}
	for _, path := range s.cfg.AllFragmentPaths() {
		files = append(files, scaffoldFile{path, ""})
	}

	results := make([]ScaffoldResult, 0, len(files))
	for _, f := range files {
		if fsutil.Exists(f.path) {
			results = append(results, ScaffoldResult{Path: f.path})
			continue
		}
		if err := fsutil.AtomicWriteFile(f.path, []byte(f.content)); err != nil {
			return results, &ScaffoldError{Path: f.path, Err: err}
		}
		clog.FromContext(ctx).Debug("created file", "path", f.path)
		results = append(results, ScaffoldResult{Path: f.path, Created: true})
	}
	return results, nil
}

// configPath returns the config file the project was loaded from, or the
// default location in the project directory.
func (s *Service) configPath() string {
	if s.cfg.Path != "" {
		return s.cfg.Path
	}
	return filepath.Join(s.cfg.Dir, config.ProjectConfigPath())
}
