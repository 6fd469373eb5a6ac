// Package version provides instance table format version parsing and
// comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the table format version implemented by this library.
const Current = "1.0"

// FormatVersion represents a parsed "major.minor" format version.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FormatVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) FormatVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	return v.Major == other.Major
}

// Newer returns true if v is a later version than other.
func (v FormatVersion) Newer(other FormatVersion) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor > other.Minor
}

// Check parses s and verifies it can be read by this library. Tables with
// the current major version and any minor version are accepted; an empty
// string is treated as Current.
func Check(s string) (FormatVersion, error) {
	current := MustParse(Current)
	if s == "" {
		return current, nil
	}
	v, err := Parse(s)
	if err != nil {
		return FormatVersion{}, err
	}
	if !current.Compatible(v) {
		return v, fmt.Errorf("unsupported format version %s (supported: %d.x)", v, current.Major)
	}
	return v, nil
}
