// Package version carries build metadata stamped in at link time.
package version

import "fmt"

var (
	// Version is the release version, overridden via -ldflags.
	Version = "dev"
	// GitCommit is the short commit hash of the build.
	GitCommit = "unknown"
	// BuildDate is the UTC build timestamp.
	BuildDate = "unknown"
)

// String returns a single-line human readable version string.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
