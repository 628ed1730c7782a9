// Package version exposes build metadata for the jsonschema-transpiler CLI's
// --version flag.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
)

// String renders a one-line version summary for CLI display.
func String() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	return fmt.Sprintf("jsonschema-transpiler %s (%s, %s, %s)", v, Revision, GoVersion, dateOrUnknown())
}

func dateOrUnknown() string {
	if BuildDate == "" {
		return "unknown build date"
	}

	return BuildDate
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
