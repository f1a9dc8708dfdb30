// Package version holds build metadata for the id3codec command line
// tools.
package version

// Populated at build time via -ldflags:
//
//	go build -ldflags "-X github.com/simonhull/id3codec/internal/version.Version=v0.2.0 \
//	  -X github.com/simonhull/id3codec/internal/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = "unknown"
)
