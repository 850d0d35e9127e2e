// Package preflight checks that the package manager executable can be found
// before any command is run.
package preflight

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ajxudir/pipcheck/pkg/cmdexec"
	"github.com/ajxudir/pipcheck/pkg/verbose"
)

// CommandResolutionHints maps executable names to installation instructions.
//
// Keys are base names without extension, values are human-readable
// installation instructions with URLs.
var CommandResolutionHints = map[string]string{
	"pip":     "Install Python: https://python.org/downloads/",
	"pip3":    "Install Python: https://python.org/downloads/",
	"python":  "Install Python: https://python.org/downloads/",
	"python3": "Install Python: https://python.org/downloads/",
	"py":      "Install the Python launcher: https://docs.python.org/3/using/windows.html",
	"uv":      "Install uv: https://docs.astral.sh/uv/getting-started/installation/",
	"pipx":    "Install pipx: https://pipx.pypa.io/stable/installation/",
}

// lookPath resolves an executable; replaced in tests.
var lookPath = exec.LookPath

// ValidationError represents a missing executable with a resolution hint.
//
// Fields:
//   - Command: The executable that was not found
//   - Hint: Installation instructions (empty if no hint is available)
type ValidationError struct {
	Command string
	Hint    string
}

// Error returns a formatted error message with resolution instructions.
//
// Returns:
//   - string: Message including the executable and how to resolve it
func (e *ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("command not found: %s\n  Resolution: %s", e.Command, e.Hint)
	}
	return fmt.Sprintf("command not found: %s\n  Resolution: Ensure '%s' is installed and available in your PATH, or pass another command with --cmd.", e.Command, e.Command)
}

// ValidateCommand checks that the executable of a command line exists.
//
// It performs the following operations:
//   - Splits the command line the same way it will be executed
//   - Resolves the first argument with exec.LookPath (PATH search, or the
//     file itself when it contains a path separator)
//   - Returns a ValidationError with a resolution hint when it is missing
//
// Commands run without a shell, so aliases and shell functions are not
// considered.
//
// Parameters:
//   - cmdLine: The configured package manager command (e.g., "python3 -m pip")
//
// Returns:
//   - error: *ValidationError when the executable is missing; nil otherwise.
//     A blank command line returns nil and is left to the version check.
func ValidateCommand(cmdLine string) error {
	argv := cmdexec.SplitCommand(cmdLine)
	if len(argv) == 0 {
		return nil
	}

	name := argv[0]
	verbose.Tracef("Preflight: checking command %q", name)

	path, err := lookPath(name)
	if err == nil {
		verbose.Tracef("Preflight: command %q found at %s", name, path)
		return nil
	}

	hint := GetResolutionHint(name)
	verbose.Printf("Preflight ERROR: command %q not found: %v", name, err)
	return &ValidationError{Command: name, Hint: hint}
}

// GetResolutionHint returns the installation hint for an executable, if available.
//
// The lookup uses the base name without extension, so "/usr/bin/pip3" and
// "pip3.exe" both find the "pip3" hint.
//
// Parameters:
//   - cmd: The executable name or path
//
// Returns:
//   - string: Installation instructions; empty string if no hint exists
func GetResolutionHint(cmd string) string {
	base := filepath.Base(cmd)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return CommandResolutionHints[strings.ToLower(base)]
}
