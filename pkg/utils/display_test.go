package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisplayWidth tests unicode-aware width measurement.
func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 0, DisplayWidth(""))
	assert.Equal(t, 4, DisplayWidth("日本"))
}

// TestToWidth tests padding to a display width.
func TestToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", ToWidth("ab", 5))
	assert.Equal(t, "abcdef", ToWidth("abcdef", 3))
	assert.Equal(t, "ab", ToWidth("ab", 0))
	assert.Equal(t, "日本 ", ToWidth("日本", 5))
}

// TestTruncate tests version truncation.
//
// It verifies:
//   - Strings at or under the limit are unchanged
//   - Longer strings become exactly the first N characters plus "..."
//   - A non-positive limit disables truncation
func TestTruncate(t *testing.T) {
	assert.Equal(t, "1.0.0", Truncate("1.0.0", 10))
	assert.Equal(t, "1234567890", Truncate("1234567890", 10))
	assert.Equal(t, "1.0.0.post...", Truncate("1.0.0.post12345", 10))
	assert.Equal(t, "1.0...", Truncate("1.0.0", 3))
	long := strings.Repeat("9", 50)
	assert.Equal(t, long, Truncate(long, 0))
}

// TestMax tests the Max helper.
func TestMax(t *testing.T) {
	assert.Equal(t, 0, Max())
	assert.Equal(t, 7, Max(3, 7, 5))
	assert.Equal(t, -1, Max(-4, -1))
}
