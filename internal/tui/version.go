package tui

import "fmt"

// Build information, set with -ldflags "-X github.com/akyairhashvil/persimmon/internal/tui.AppVersion=..."
var (
	AppVersion = "dev"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}

// VersionLabel is the version string shown by the CLI.
func VersionLabel() string {
	return versionLabel()
}
