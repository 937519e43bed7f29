// Package version records build metadata for the sancorpus CLI.
package version

import "github.com/fatih/color"

// Overridable at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "1.0.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Pretty returns the version colored for terminal display. Plain callers
// (cobra's --version flag) use Version directly.
func Pretty() string {
	return color.New(color.FgGreen, color.Bold).Sprint(Version)
}
