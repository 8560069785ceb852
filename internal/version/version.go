// Package version exposes the build identity stamped into the launchd
// binary at release time.
package version

// Overridden through -ldflags by the release build; a plain `go build`
// produces a dev binary.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion renders the build identity for display.
func GetVersion() string {
	return FormatVersion(Version, Commit, Date)
}

// FormatVersion renders a version triple into a single display line. Dev
// builds carry no meaningful commit or date, so they render as just that.
func FormatVersion(version, commit, date string) string {
	if version == "dev" {
		return "dev (unreleased build)"
	}
	return version + " (" + commit + ", built " + date + ")"
}
