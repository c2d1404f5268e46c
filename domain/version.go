package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a version by its suffix.
type Kind int

const (
	// KindRelease is a regular release (no recognized suffix).
	KindRelease Kind = iota
	// KindSnapshot is a version ending in "-snapshot".
	KindSnapshot
	// KindDev is a version ending in "-dev" or marked as a prerelease.
	KindDev
)

// String returns the lowercase suffix token for the kind.
func (k Kind) String() string {
	switch k {
	case KindSnapshot:
		return "snapshot"
	case KindDev:
		return "dev"
	case KindRelease:
		return "release"
	default:
		return "unknown"
	}
}

// numericPattern matches one or more dot-separated non-negative integers.
var numericPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// Version is an immutable dotted-integer version with an optional
// classification suffix. Ordering and equality consider only the numeric
// tuple; the suffix never participates in comparison, so "1.0-snapshot"
// and "1.0" compare equal.
type Version struct {
	raw     string
	numeric string
	parts   []int
	kind    Kind
}

// NewVersion parses a version string such as "1.2.3" or "1.2.3-snapshot".
// Recognized suffixes are "-snapshot" and "-dev" (case-insensitive).
// It returns ErrInvalidFormat when the numeric portion is not a sequence
// of dot-separated integers or the suffix is not recognized.
func NewVersion(raw string) (Version, error) {
	return NewPrereleaseVersion(raw, false)
}

// NewPrereleaseVersion parses a version string with an explicit prerelease
// marker, as reported by the GitHub releases API. The marker forces KindDev
// and additionally allows an otherwise unrecognized suffix (e.g. "-rc"),
// which is stripped before numeric validation.
func NewPrereleaseVersion(raw string, prerelease bool) (Version, error) {
	numeric, suffix := splitSuffix(raw)

	kind := KindRelease
	switch {
	case suffix == "snapshot":
		kind = KindSnapshot
	case suffix == "dev" || prerelease:
		kind = KindDev
	case suffix != "":
		return Version{}, fmt.Errorf(
			"%w: unrecognized suffix %q in %q (supported: int.int.int...-snapshot/dev)",
			ErrInvalidFormat, suffix, raw,
		)
	}

	if !numericPattern.MatchString(numeric) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	segments := strings.Split(numeric, ".")
	parts := make([]int, 0, len(segments))
	for _, segment := range segments {
		value, err := strconv.Atoi(segment)
		if err != nil {
			return Version{}, fmt.Errorf("%w: component %q in %q", ErrInvalidFormat, segment, raw)
		}
		parts = append(parts, value)
	}

	return Version{
		raw:     raw,
		numeric: numeric,
		parts:   parts,
		kind:    kind,
	}, nil
}

// splitSuffix separates the numeric portion from a dash-delimited suffix.
// The suffix is returned lowercased; an empty suffix means none was present.
func splitSuffix(raw string) (string, string) {
	idx := strings.Index(raw, "-")
	if idx < 0 {
		return raw, ""
	}
	return raw[:idx], strings.ToLower(raw[idx+1:])
}

// Compare returns -1 when v is older than other, 1 when newer, and 0 when
// the numeric tuples are equal. The shorter tuple is padded with zeros, so
// "1.2" and "1.2.0" compare equal.
func (v Version) Compare(other Version) int {
	length := len(v.parts)
	if len(other.parts) > length {
		length = len(other.parts)
	}

	for i := range length {
		mine, theirs := 0, 0
		if i < len(v.parts) {
			mine = v.parts[i]
		}
		if i < len(other.parts) {
			theirs = other.parts[i]
		}

		if mine < theirs {
			return -1
		}
		if mine > theirs {
			return 1
		}
	}
	return 0
}

// Equals reports whether both versions have the same numeric tuple.
// Suffix differences alone do not break equality.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// Raw returns the full version string as supplied, including any suffix.
func (v Version) Raw() string { return v.raw }

// Numeric returns the version string with any suffix stripped.
func (v Version) Numeric() string { return v.numeric }

// Kind returns the classification derived from the suffix or prerelease flag.
func (v Version) Kind() Kind { return v.kind }

func (v Version) String() string { return v.raw }
