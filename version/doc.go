// Package version provides version information and build metadata for palz.
//
// Version information comes from, in order of preference:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Build with:
//
//	go build -ldflags "-X github.com/fabiofdsantos/palz/version.Version=v2.0.0"
package version
