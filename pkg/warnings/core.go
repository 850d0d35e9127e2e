// Package warnings reports non-fatal problems to the user, independent of
// --verbose. Warnings go to stderr so stdout stays clean for tables and
// structured output.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Prefix starts every warning line.
const Prefix = "Warning: "

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes one warning line to the configured writer.
//
// Parameters:
//   - format: Printf-style format string; Prefix and a trailing newline are added
//   - args: Format arguments
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, Prefix+format+"\n", args...)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
