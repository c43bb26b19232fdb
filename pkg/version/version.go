// Package version holds build metadata injected with -ldflags.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for `sitetraffic version`.
func String() string {
	return "sitetraffic " + Version + " (" + Commit + ") built " + Date
}
