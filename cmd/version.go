// Package cmd holds the build metadata shared by the validate_* binaries.
package cmd

// Set via -ldflags "-X github.com/thoreinstein/usdcheck/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
