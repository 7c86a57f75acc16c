// Package paths provides user-directory lookups for the usdcheck tools.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// The tools read an optional usdcheck.yaml from [AppConfigDir], and resolver
// search paths may use a leading "~/" expanded by [ExpandHome].
package paths
