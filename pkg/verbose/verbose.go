// Package verbose provides debug logging for pipcheck.
//
// Messages are written with a [DEBUG] prefix to stderr, and only when
// verbose mode has been enabled with --verbose.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages and returns a
// function restoring the previous writer.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
//
// Returns:
//   - func(): Restores the writer that was active before the call
func SetWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	previous := writer
	if w != nil {
		writer = w
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		writer = previous
	}
}

func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Tracef prints a fine-grained message, such as a per-package decision.
func Tracef(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[TRACE] "+format+"\n", args...)
	}
}

// CommandExec logs the argv of a command about to run.
func CommandExec(args []string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Executing: %s\n", strings.Join(args, " "))
	}
}

// CommandResult logs the outcome of a command.
//
// It performs the following operations:
//   - Prints whether the command succeeded or failed
//   - Prints up to 5 output lines, collapsing longer output to the first 3 lines
//
// Parameters:
//   - args: The argv that was executed
//   - err: The execution error, nil on success
//   - output: The command's stdout
func CommandResult(args []string, err error, output string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	cmd := truncate(strings.Join(args, " "), 60)
	if err == nil {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command succeeded: %s\n", cmd)
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command failed: %s: %v\n", cmd, err)
	}
	if strings.TrimSpace(output) == "" {
		return
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > 5 {
		for _, line := range lines[:3] {
			_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
		}
		_, _ = fmt.Fprintf(w, "        | ... (%d more lines)\n", len(lines)-3)
		return
	}
	for _, line := range lines {
		_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
	}
}

// ConfigLoaded logs which config source was used.
func ConfigLoaded(source string) {
	Printf("Config loaded: %s", source)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
