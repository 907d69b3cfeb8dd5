// Package version holds build metadata, set at link time with
// -ldflags "-X github.com/itsmostafa/gonav/internal/version.Version=...".
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Generator identifies gonav in generated output.
func Generator() string {
	return "gonav " + Version
}
