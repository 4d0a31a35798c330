// Package version provides version information for the shipwright CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// ContentSchemaVersion is the newest content schema this build reads.
	ContentSchemaVersion int `json:"contentSchemaVersion"`
}

// Get returns the current version information.
func Get(contentSchemaVersion int) Info {
	return Info{
		Version:              Version,
		GitCommit:            GitCommit,
		BuildDate:            BuildDate,
		GoVersion:            runtime.Version(),
		ContentSchemaVersion: contentSchemaVersion,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("shipwright:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s\n  Content schema: <= %d",
		i.Version, i.BuildDate, i.GitCommit, i.GoVersion, i.ContentSchemaVersion)
}
