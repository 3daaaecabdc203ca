// Package buildinfo holds version details stamped in with -ldflags -X.
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the version line printed by --version.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + Date + ")"
}
