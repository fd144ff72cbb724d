// Package version carries build identification, set at link time via
// -ldflags "-X github.com/autoforge-dev/autoforge/pkg/version.Version=...".
package version

// Version is the build version string.
var Version = "dev"
