package buildinfo

import "runtime"

// Build-time variables (set via ldflags, see the package doc).
var (
	// Version is the semantic version.
	Version = "dev"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"

	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
)

// Info contains build information.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
	}
}

// String returns the version line printed by --version, for example
// "v0.3.0 (a1b2c3d) built at 2026-01-02T15:04:05Z with go1.24.4".
func String() string {
	return Version + " (" + shortCommit(Commit) + ") built at " + BuildTime + " with " + GoVersion
}

// shortCommit abbreviates a full git hash to the 7 characters git shows.
func shortCommit(c string) string {
	if len(c) == 40 {
		return c[:7]
	}
	return c
}
