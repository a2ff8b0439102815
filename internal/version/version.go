package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the ember CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Pretty renders Version with coloured major, minor and patch parts.
// Colour follows color.NoColor; a version that is not dotted is returned as is.
func Pretty() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return v
	}
	patch, suffix := parts[2], ""
	if i := strings.IndexAny(patch, "-+"); i >= 0 {
		patch, suffix = patch[:i], patch[i:]
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(patch) + suffix
}
