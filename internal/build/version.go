// Package build provides version and build information for relkit.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ShortCommit returns the first 7 characters of the commit hash.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// Info returns a plain, multi-line description of the build for scripting.
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "relkit %s\n", Version)
	fmt.Fprintf(&b, "commit: %s\n", ShortCommit())
	fmt.Fprintf(&b, "built: %s\n", BuildDate)
	fmt.Fprintf(&b, "go: %s\n", runtime.Version())
	fmt.Fprintf(&b, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return b.String()
}
