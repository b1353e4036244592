package fzfcontract

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Version is a parsed fzf version. It is a plain value: two versions are
// equal exactly when their three components are equal.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Accepts "0.43.0" as well as "0.43.1-abc123"; fzf prints its version as
// "0.43.0 (d6faa58)" so anything after the numeric prefix is ignored.
var versionRE = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// ParseVersion parses a version string like "0.43.0" into a Version.
// Trailing pre-release or build suffixes are ignored. A string without a
// leading major.minor.patch numeric prefix fails with a *ParseError.
func ParseVersion(s string) (Version, error) {
	text := strings.TrimSpace(s)
	if fields := strings.Fields(text); len(fields) > 0 {
		text = fields[0]
	}

	m := versionRE.FindStringSubmatch(text)
	if m == nil {
		return Version{}, &ParseError{Text: s}
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, &ParseError{Text: s, Cause: err}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, &ParseError{Text: s, Cause: err}
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, &ParseError{Text: s, Cause: err}
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// MustParseVersion parses a version string, panicking on error.
// Use only for known-good version constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// DetectVersion runs the fzf binary and parses its reported version.
func DetectVersion(fzfPath string) (Version, error) {
	if fzfPath == "" {
		fzfPath = "fzf"
	}

	source := fzfPath + " " + FlagVersion
	out, err := exec.Command(fzfPath, FlagVersion).Output()
	if err != nil {
		return Version{}, fmt.Errorf("failed to run %s: %w", source, err)
	}

	v, err := ParseVersion(strings.TrimSpace(string(out)))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Source = source
		}
		return Version{}, err
	}
	return v, nil
}

// String returns the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
// Versions are ordered lexicographically on (major, minor, patch).
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// IsNewerThan reports whether v is newer than other.
func (v Version) IsNewerThan(other Version) bool {
	return v.Compare(other) > 0
}

// IsOlderThan reports whether v is older than other.
func (v Version) IsOlderThan(other Version) bool {
	return v.Compare(other) < 0
}

// IsCompatibleWith reports whether v and other belong to the same fzf release
// line. fzf ties feature changes to minor releases, so two versions are
// compatible when major and minor match; the patch component is ignored.
func (v Version) IsCompatibleWith(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}
