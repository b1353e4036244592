// Package fzfcontract provides a single source of truth for the fzf CLI
// interface details this library depends on: flag names, exit statuses, and
// the fzf versions each release of this library was validated against.
//
// # Purpose
//
// This package centralizes the "contract" between the typed-fzf Go code and
// the fzf binary. When fzf changes its interface (flag names, version output,
// exit codes), only this package needs to be updated.
//
// # Package Contents
//
//   - version.go: version parsing and detection of the installed fzf
//   - compat.go: the supported-version table and the compatibility resolver
//   - errors.go: ParseError and IncompatibleError
//   - flags.go: fzf flag name constants (--multi, --query, etc.)
//
// # Version Compatibility
//
// The supported-version table records, for each release of this library, the
// newest fzf release it was validated against. Use CheckVersion to detect the
// installed fzf and fail fast when it is not release-compatible (same
// major.minor) with the newest entry:
//
//	if err := fzfcontract.CheckVersion("fzf"); err != nil {
//		log.Fatal(err)
//	}
//
// When the installed fzf matches an older library release's ceiling instead,
// the returned error names that release so the user can downgrade this
// library rather than update fzf.
//
// # Sources
//
// These constants are derived from:
//   - fzf --help output
//   - The fzf man pages bundled in this repository (see README.md)
//   - https://github.com/junegunn/fzf
package fzfcontract
