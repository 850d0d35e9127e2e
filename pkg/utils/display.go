// Package utils provides terminal display helpers shared by the output layer.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncationMarker is appended to strings shortened by Truncate.
const TruncationMarker = "..."

// DisplayWidth returns the display width of a string, accounting for unicode characters.
//
// Wide characters (e.g., CJK characters, emojis) occupy two terminal cells.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with spaces to a specific display width.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells (must be > 0 to have effect)
//
// Returns:
//   - string: The padded string, or original if already wide enough or width <= 0
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Truncate shortens val to its first limit characters followed by
// TruncationMarker when it is longer than limit characters.
//
// Parameters:
//   - val: The string to shorten
//   - limit: Maximum number of characters kept; values <= 0 disable truncation
//
// Returns:
//   - string: val unchanged, or exactly "<first limit chars>..."
func Truncate(val string, limit int) string {
	if limit <= 0 {
		return val
	}
	runes := []rune(val)
	if len(runes) <= limit {
		return val
	}
	return string(runes[:limit]) + TruncationMarker
}

// Max returns the maximum value from a list of integers, or 0 for none.
func Max(values ...int) int {
	m := 0
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
