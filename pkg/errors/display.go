package errors

import (
	"fmt"
	"io"
	"strings"
)

// ErrorHint provides an actionable resolution for a class of errors.
//
// Fields:
//   - Pattern: Substring to match in the error message (case-insensitive)
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	Pattern    string
	Resolution string
}

// CommonErrorHints maps error message patterns to resolutions.
var CommonErrorHints = []ErrorHint{
	{Pattern: "executable file not found", Resolution: "Install the package manager or pass its path with --cmd"},
	{Pattern: "requires version", Resolution: "Upgrade the package manager (e.g., pip install --upgrade pip)"},
	{Pattern: "failed to parse output", Resolution: "Run the list command manually to inspect its output"},
	{Pattern: "config", Resolution: "Check the .pipcheck.yml / .pipcheck.toml file or the --config path"},
}

// HintFor returns the resolution for the first matching hint pattern.
//
// Parameters:
//   - err: The error to look up
//
// Returns:
//   - string: The resolution text, or "" when no hint matches
func HintFor(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	for _, h := range CommonErrorHints {
		if strings.Contains(msg, strings.ToLower(h.Pattern)) {
			return h.Resolution
		}
	}
	return ""
}

// PrintError prints a terminal error with an optional hint.
//
// Output format:
//
//	Error: <error message>
//	  Hint: <actionable hint if available>
//
// EmptyOutputError is not an error for the user and is not printed here.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - err: The error to display
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if _, ok := IsEmptyOutput(err); ok {
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
	if hint := HintFor(err); hint != "" {
		_, _ = fmt.Fprintf(w, "  Hint: %s\n", hint)
	}
}
