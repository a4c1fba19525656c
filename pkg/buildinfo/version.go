// Package buildinfo exposes the basecanvas version stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/basecanvas/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/basecanvas/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/basecanvas
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Revision returns Commit, falling back to the VCS revision recorded by the
// Go toolchain when the binary was built without ldflags.
func Revision() string {
	if Commit != "none" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return Commit
}

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Revision(), Date)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
