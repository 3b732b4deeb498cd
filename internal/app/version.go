package app

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/travelpath-backend/internal/app.Version=1.2.0 \
//	  -X github.com/heartmarshall/travelpath-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for the startup log line.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
