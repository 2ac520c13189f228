package semverbump

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is a MAJOR.MINOR.PATCH triple. All fields are non-negative.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// DefaultVersion is used when the version file does not exist.
var DefaultVersion = Version{Major: 1}

// String formats the version as "major.minor.patch" without a "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// canonical returns the "v"-prefixed form understood by x/mod/semver.
func (v Version) canonical() string {
	return "v" + v.String()
}

// Validate reports whether v is a well-formed semantic version.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return fmt.Errorf("%w: %s has a negative component", ErrInvalidVersion, v)
	}
	if !semver.IsValid(v.canonical()) {
		return fmt.Errorf("%w: %s", ErrInvalidVersion, v)
	}
	return nil
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to or after w.
func (v Version) Compare(w Version) int {
	return semver.Compare(v.canonical(), w.canonical())
}

// BumpType is the granularity of a version increment.
type BumpType string

const (
	BumpMajor BumpType = "major"
	BumpMinor BumpType = "minor"
	BumpPatch BumpType = "patch"
)

// IsValid reports whether t is one of the known bump types.
func (t BumpType) IsValid() bool {
	switch t {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	}
	return false
}

// Bump returns the version that follows current for the given bump type.
//
//	major: (M+1, 0, 0)
//	minor: (M, N+1, 0)
//	patch: (M, N, P+1)
func Bump(current Version, bump BumpType) (Version, error) {
	switch bump {
	case BumpMajor:
		return Version{Major: current.Major + 1}, nil
	case BumpMinor:
		return Version{Major: current.Major, Minor: current.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: current.Major, Minor: current.Minor, Patch: current.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownBumpType, bump)
	}
}
