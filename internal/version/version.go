// Package version reports build metadata stamped in by the linker.
package version

import "fmt"

// Set with -ldflags "-X github.com/dkoosis/topclust/internal/version.Version=..." at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata for --version.
func String() string {
	return fmt.Sprintf("topclust %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
