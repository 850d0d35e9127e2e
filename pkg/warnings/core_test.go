package warnings

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests the behavior of SetWarningWriter.
//
// It verifies:
//   - Original writer is restored after calling restore function
//   - Warning lines are prefixed and newline-terminated
//   - nil writer defaults to os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	original := WarningWriter()

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	Warnf("pip exited with %s", "exit status 1")
	restore()

	assert.Equal(t, original, WarningWriter())
	assert.Equal(t, "Warning: pip exited with exit status 1\n", buf.String())

	restore = SetWarningWriter(nil)
	assert.Equal(t, os.Stderr, WarningWriter())
	restore()
	assert.Equal(t, original, WarningWriter())
}
