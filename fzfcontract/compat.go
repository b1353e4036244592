package fzfcontract

import (
	"fmt"
	"log/slog"
	"sort"
)

// TestedFzfVersion is the newest fzf release this library was validated
// against. Installed versions outside its release line fail CheckVersion.
const TestedFzfVersion = "0.43.0"

// SupportedVersion associates an fzf release with the release of this
// library that supported it: "as of library version Lib, fzf version Fzf was
// the newest supported".
type SupportedVersion struct {
	Fzf Version
	Lib Version
}

// supportedVersions records, for each release of this library, the newest fzf
// version it was validated against. Ascending by fzf version; the last entry
// must agree with TestedFzfVersion.
var supportedVersions = []SupportedVersion{
	{Fzf: Version{Major: 0, Minor: 42, Patch: 0}, Lib: Version{Major: 0, Minor: 1, Patch: 0}},
	{Fzf: Version{Major: 0, Minor: 43, Patch: 0}, Lib: Version{Major: 0, Minor: 2, Patch: 0}},
}

// Verdict is the result of classifying one installed fzf version. It is
// returned by value and never retained by the resolver.
type Verdict struct {
	Installed Version
	Latest    Version // newest fzf version in the resolver's table

	// Compatible is true when Installed is release-compatible with Latest.
	Compatible bool

	// Fallback, when non-nil, names the library version whose supported fzf
	// release matches Installed: downgrading to it restores compatibility.
	// Only set on incompatible verdicts.
	Fallback *Version
}

// Err converts the verdict into the caller-facing result: nil for a
// compatible install, an *IncompatibleError carrying the full diagnostic
// otherwise. The resolver itself never terminates the process; that decision
// belongs to the caller.
func (v Verdict) Err() error {
	if v.Compatible {
		return nil
	}
	return &IncompatibleError{
		Latest:    v.Latest,
		Installed: v.Installed,
		Fallback:  v.Fallback,
	}
}

// Resolver classifies installed fzf versions against a fixed table of
// supported version pairs. It is immutable after construction and safe for
// concurrent use.
type Resolver struct {
	table  []SupportedVersion
	latest Version
}

// NewResolver builds a resolver from a table ordered ascending by fzf
// version. The table records, per library release, the newest fzf release it
// supported. It panics when the table is empty or its fzf versions are not
// strictly increasing; a malformed table is a programming error, not a
// runtime condition.
func NewResolver(table []SupportedVersion) *Resolver {
	if len(table) == 0 {
		panic("fzfcontract: supported-version table is empty")
	}
	for i := 1; i < len(table); i++ {
		if table[i-1].Fzf.Compare(table[i].Fzf) >= 0 {
			panic(fmt.Sprintf("fzfcontract: supported-version table not strictly ascending at index %d (%s >= %s)",
				i, table[i-1].Fzf, table[i].Fzf))
		}
	}

	copied := make([]SupportedVersion, len(table))
	copy(copied, table)
	return &Resolver{table: copied, latest: copied[len(copied)-1].Fzf}
}

// LatestSupported returns the newest fzf version in the resolver's table.
func (r *Resolver) LatestSupported() Version {
	return r.latest
}

// Classify determines how the installed fzf version relates to the supported
// table. It never fails: incompatibility is a normal outcome carried by the
// verdict, not an error.
func (r *Resolver) Classify(installed Version) Verdict {
	verdict := Verdict{Installed: installed, Latest: r.latest}

	// Rightmost insertion point: index of the first table entry whose fzf
	// version is strictly greater than installed. An exact match sorts
	// before that position.
	i := sort.Search(len(r.table), func(i int) bool {
		return installed.Compare(r.table[i].Fzf) < 0
	})

	// Older than every supported release line.
	if i == 0 {
		return verdict
	}

	// Release-compatible with the newest supported line, even when the
	// installed version sorts above every table entry (a later patch).
	if installed.IsCompatibleWith(r.latest) {
		verdict.Compatible = true
		return verdict
	}

	// Newer than everything in the table and not on the latest line.
	if i == len(r.table) {
		return verdict
	}

	// The installed version falls between table entries. When it sits on
	// the release line of a neighboring entry, an older library release
	// supported it; surface that release as a downgrade option. The entry
	// below the insertion point wins over the one above it.
	if prev := r.table[i-1]; installed.IsCompatibleWith(prev.Fzf) {
		verdict.Fallback = &prev.Lib
		return verdict
	}
	if next := r.table[i]; installed.IsCompatibleWith(next.Fzf) {
		verdict.Fallback = &next.Lib
		return verdict
	}

	return verdict
}

// defaultResolver classifies against the table of releases shipped with this
// library. Built once at init; read-only afterwards.
var defaultResolver = NewResolver(supportedVersions)

// DefaultResolver returns the resolver backed by this library's own
// supported-version table.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// CheckVersion detects the installed fzf version and classifies it against
// this library's supported-version table. It returns nil when the installed
// fzf is release-compatible with the newest supported release, a *ParseError
// when the version output cannot be parsed, and an *IncompatibleError
// otherwise. Detection runs fzf once; failures to spawn it are returned as
// wrapped exec errors.
func CheckVersion(fzfPath string) error {
	installed, err := DetectVersion(fzfPath)
	if err != nil {
		return err
	}

	if err := defaultResolver.Classify(installed).Err(); err != nil {
		return err
	}

	slog.Info("fzf version is compatible",
		"fzf_version", installed.String(),
		"tested_version", TestedFzfVersion,
	)
	return nil
}
