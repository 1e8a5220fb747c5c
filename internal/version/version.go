package version

import "github.com/fatih/color"

// Version information for the csvtex CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.3.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored returns Version with each numeric component highlighted.
// Pre-release suffixes are left plain.
func Colored() string {
	major, rest, ok := cut(Version, '.')
	if !ok {
		return Version
	}
	minor, rest, ok := cut(rest, '.')
	if !ok {
		return Version
	}
	patch, suffix := rest, ""
	for i := range len(rest) {
		if rest[i] < '0' || rest[i] > '9' {
			patch, suffix = rest[:i], rest[i:]
			break
		}
	}
	return majorColor.Sprint(major) + "." + minorColor.Sprint(minor) + "." + patchColor.Sprint(patch) + suffix
}

func cut(s string, sep byte) (before, after string, found bool) {
	for i := range len(s) {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
