// Package version provides a lenient, comparable version value for package
// manager version strings. It tolerates mixed numeric and alphabetic
// segments ("1.2.3a", "2.0rc1", "2019.3") and variable component counts.
package version

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVersion is returned when a string cannot be read as a version.
var ErrInvalidVersion = errors.New("invalid version")

// Component is a single segment of a version: either a run of digits or a
// run of letters.
//
// Fields:
//   - Text: The segment as it appeared in the input (leading zeros kept)
//   - Numeric: true when the segment consists only of digits
type Component struct {
	Text    string
	Numeric bool
}

// Version is a parsed version string with a total ordering.
//
// The zero value is not a valid version; always obtain one via Parse.
type Version struct {
	raw        string
	components []Component
}

// Parse reads a version string into a Version.
//
// It performs the following operations:
//   - Step 1: Trims surrounding whitespace and drops a "v"/"V" prefix directly followed by a digit
//   - Step 2: Splits the string into digit runs and letter runs; separators (. - _ + ! ~) only delimit
//   - Step 3: Rejects strings with no numeric component or with any other character
//
// Parameters:
//   - s: The version string (e.g., "1.2.3", "1.2.3a", "v2.0-rc1")
//
// Returns:
//   - Version: The parsed version
//   - error: ErrInvalidVersion (wrapped with the input) when the string is unreadable
func Parse(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Version{}, fmt.Errorf("%w: empty string", ErrInvalidVersion)
	}

	body := raw
	if len(body) > 1 && (body[0] == 'v' || body[0] == 'V') && isDigit(body[1]) {
		body = body[1:]
	}

	var components []Component
	hasNumeric := false
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case isDigit(c):
			j := i
			for j < len(body) && isDigit(body[j]) {
				j++
			}
			components = append(components, Component{Text: body[i:j], Numeric: true})
			hasNumeric = true
			i = j
		case isLetter(c):
			j := i
			for j < len(body) && isLetter(body[j]) {
				j++
			}
			components = append(components, Component{Text: strings.ToLower(body[i:j])})
			i = j
		case isSeparator(c):
			i++
		default:
			return Version{}, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidVersion, c, raw)
		}
	}

	if !hasNumeric {
		return Version{}, fmt.Errorf("%w: no numeric component in %q", ErrInvalidVersion, raw)
	}

	return Version{raw: raw, components: components}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the trimmed input the version was parsed from.
func (v Version) String() string {
	return v.raw
}

// Components returns a copy of the parsed components.
func (v Version) Components() []Component {
	out := make([]Component, len(v.components))
	copy(out, v.components)
	return out
}

// Major returns the leading numeric component without leading zeros.
//
// Returns:
//   - string: The first numeric component normalised (e.g., "007" -> "7"), or "" for the zero Version
func (v Version) Major() string {
	for _, c := range v.components {
		if c.Numeric {
			return trimZeros(c.Text)
		}
	}
	return ""
}

// Compare orders two versions.
//
// Components are compared pairwise: two numeric components numerically, any
// other pair lexically by text. When one version is a prefix of the other,
// the shorter version is lower.
//
// Parameters:
//   - a: The first version
//   - b: The second version
//
// Returns:
//   - int: -1 if a < b, 0 if a == b, +1 if a > b
func Compare(a, b Version) int {
	n := len(a.components)
	if len(b.components) < n {
		n = len(b.components)
	}

	for i := 0; i < n; i++ {
		if c := compareComponent(a.components[i], b.components[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a.components) < len(b.components):
		return -1
	case len(a.components) > len(b.components):
		return 1
	default:
		return 0
	}
}

// CompareMajor compares only the leading numeric components of a and b.
func CompareMajor(a, b Version) int {
	return compareNumeric(a.Major(), b.Major())
}

func compareComponent(a, b Component) int {
	if a.Numeric && b.Numeric {
		return compareNumeric(a.Text, b.Text)
	}
	return strings.Compare(a.Text, b.Text)
}

// compareNumeric compares two digit strings of arbitrary length.
func compareNumeric(a, b string) int {
	a, b = trimZeros(a), trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		return "0"
	}
	return t
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSeparator(c byte) bool {
	switch c {
	case '.', '-', '_', '+', '!', '~':
		return true
	}
	return false
}
