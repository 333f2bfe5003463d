// Package version provides build version information.
package version

// Version is overridden at build time via ldflags.
// Example: go build -ldflags "-X github.com/dalemusser/tradedesk/internal/version.Version=0.3.0"
var Version = "dev"

// String returns the current version string.
func String() string {
	return Version
}
