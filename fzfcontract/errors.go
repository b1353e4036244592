package fzfcontract

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError indicates that a version string had no recognizable
// major.minor.patch numeric prefix, or that a component overflowed int.
type ParseError struct {
	Text   string // the raw text that failed to parse
	Source string // where the text came from (e.g. "fzf --version"), when known
	Cause  error  // underlying cause (e.g. a strconv range error), when any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse fzf version from %q", e.Text)
	if e.Source != "" {
		msg += fmt.Sprintf(" (output of %s)", e.Source)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Diagnostic templates for IncompatibleError. The exact wording is not part
// of the API; callers should match on the error type, not the message.
const (
	msgHeader = "this library was written against the man pages of fzf %s; you are using fzf %s, "
	msgOlder  = "which is older, meaning some of the options exposed by this API may not be implemented by your fzf yet. "
	msgNewer  = "which is newer, meaning some fzf features you may want to use may be absent from this API. "
	msgPrev   = "your fzf version was fully supported by an earlier release of this library (%s), so you can downgrade this library instead of updating fzf if you prefer. "
	msgClose  = "your use case may well still work: the man pages this library was written against are bundled in its repository, so you can diff them against your system's fzf man pages to be sure. See README.md."
)

// IncompatibleError indicates that the installed fzf version is not
// release-compatible with the newest fzf release this library supports.
type IncompatibleError struct {
	Latest    Version  // newest fzf version this library was validated against
	Installed Version  // the fzf version that was detected
	Fallback  *Version // library version that supported Installed, if any
}

// Error composes the full multi-part diagnostic.
func (e *IncompatibleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, msgHeader, e.Latest, e.Installed)
	if e.Installed.IsNewerThan(e.Latest) {
		b.WriteString(msgNewer)
	} else {
		b.WriteString(msgOlder)
	}
	if e.Fallback != nil {
		fmt.Fprintf(&b, msgPrev, e.Fallback)
	}
	b.WriteString(msgClose)
	return b.String()
}

// IsIncompatible reports whether err is a version-compatibility failure, as
// opposed to a detection or parse failure.
func IsIncompatible(err error) bool {
	var incompat *IncompatibleError
	return errors.As(err, &incompat)
}

// IsParseError reports whether err came from an unparseable version string.
func IsParseError(err error) bool {
	var parse *ParseError
	return errors.As(err, &parse)
}
