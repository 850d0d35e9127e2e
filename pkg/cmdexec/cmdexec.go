// Package cmdexec runs the package manager executable and returns its
// standard output. Commands are executed directly, without a shell, from an
// argv produced by SplitCommand.
package cmdexec

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ajxudir/pipcheck/pkg/verbose"
	"github.com/ajxudir/pipcheck/pkg/warnings"
)

// ExecuteFunc is the function signature for command execution.
//
// Parameters:
//   - args: argv of the command; args[0] is the executable name or path
//
// Returns:
//   - []byte: Standard output of the command
//   - error: Any error that occurred during execution
type ExecuteFunc func(args []string) ([]byte, error)

// Execute is the default command execution function.
//
// It can be replaced with a fake implementation in tests.
var Execute ExecuteFunc = executeCommand

// executeCommand runs args and captures stdout.
//
// It performs the following operations:
//   - Step 1: Starts args[0] with the remaining arguments and waits for it to exit
//   - Step 2: Returns stdout when the command succeeds
//   - Step 3: When the command exits non-zero but wrote to stdout, returns that stdout
//     (package managers exit non-zero for warnings; callers judge the output)
//   - Step 4: Otherwise returns an error carrying stderr, or stdout if stderr is empty
//
// Parameters:
//   - args: argv of the command
//
// Returns:
//   - []byte: Standard output
//   - error: Start failure (e.g., executable not found) or non-zero exit without output
func executeCommand(args []string) ([]byte, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return nil, fmt.Errorf("empty command")
	}

	verbose.CommandExec(args)

	cmd := exec.Command(args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	verbose.CommandResult(args, err, stdout.String())
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(bytes.TrimSpace(stdout.Bytes())) > 0 {
		warnings.Warnf("%s exited with %v; using its output", strings.Join(args, " "), err)
		return stdout.Bytes(), nil
	}

	errMsg := strings.TrimSpace(stderr.String())
	if errMsg == "" {
		errMsg = strings.TrimSpace(stdout.String())
	}
	if errMsg != "" {
		return nil, fmt.Errorf("%s: %w: %s", strings.Join(args, " "), err, errMsg)
	}
	return nil, fmt.Errorf("%s: %w", strings.Join(args, " "), err)
}

// SplitCommand parses a command string into arguments, respecting quotes.
//
// Quoted strings (single or double) are kept as one argument even if they
// contain spaces. A backslash escapes the next quote, backslash, or space.
//
// Parameters:
//   - cmdStr: Command string to split (e.g., `python3 -m pip`, `"/opt/my python/bin/pip"`)
//
// Returns:
//   - []string: Parsed arguments; empty for a blank string
func SplitCommand(cmdStr string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	hasToken := false
	quoteChar := rune(0)

	runes := []rune(cmdStr)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\\' && i+1 < len(runes) && quoteChar != '\'' {
			next := runes[i+1]
			if next == '"' || next == '\'' || next == '\\' || next == ' ' {
				current.WriteRune(next)
				hasToken = true
				i++
				continue
			}
		}

		if r == '"' || r == '\'' {
			switch {
			case !inQuote:
				inQuote = true
				quoteChar = r
				hasToken = true
			case r == quoteChar:
				inQuote = false
				quoteChar = 0
			default:
				current.WriteRune(r)
			}
			continue
		}

		if !inQuote && (r == ' ' || r == '\t') {
			if hasToken {
				args = append(args, current.String())
				current.Reset()
				hasToken = false
			}
			continue
		}

		current.WriteRune(r)
		hasToken = true
	}

	if hasToken {
		args = append(args, current.String())
	}

	return args
}

// ShellEscape escapes a string for display in a copy-pasteable shell command.
//
// Safe strings (alphanumerics and - _ . / @ : + = ,) are returned unchanged;
// anything else is wrapped in single quotes with embedded single quotes escaped.
//
// Parameters:
//   - s: String to escape
//
// Returns:
//   - string: Shell-safe string
func ShellEscape(s string) string {
	if s == "" {
		return "''"
	}

	needsEscape := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var escaped strings.Builder
	escaped.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			escaped.WriteString("'\\''")
		} else {
			escaped.WriteRune(r)
		}
	}
	escaped.WriteRune('\'')
	return escaped.String()
}

// JoinCommand renders argv as a single shell-escaped command line.
func JoinCommand(args []string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = ShellEscape(a)
	}
	return strings.Join(parts, " ")
}

func isShellSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' ||
		r == '/' || r == '@' || r == ':' ||
		r == '+' || r == '=' || r == ','
}
