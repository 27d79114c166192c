package ui

import (
	"fmt"

	"jiractl/internal/theme"
)

// Tagline is shown under the app name and in the CLI help
const Tagline = "Create and look up Jira tickets without leaving the terminal"

// VersionInfo holds version information for display in the header.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   Tagline,
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader builds the banner shown before the first prompt.
// Build details are only shown in debug mode.
func renderHeader(debug bool) string {
	header := theme.AppNameStyle.Render("jiractl")
	if debug {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7] // Short commit hash
		}
		header += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	return header + "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)
}
