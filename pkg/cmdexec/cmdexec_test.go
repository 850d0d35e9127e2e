package cmdexec

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipcheck/pkg/warnings"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping Unix-specific test on Windows")
	}
}

// TestSplitCommand tests the behavior of SplitCommand.
//
// It verifies:
//   - Whitespace separates arguments
//   - Single and double quotes group words
//   - Backslash escapes quotes and spaces
//   - Empty quoted strings produce an empty argument
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"pip", []string{"pip"}},
		{"python3 -m pip", []string{"python3", "-m", "pip"}},
		{"  pip3\t--isolated  ", []string{"pip3", "--isolated"}},
		{`"/opt/my python/bin/pip" list`, []string{"/opt/my python/bin/pip", "list"}},
		{`'/opt/my python/pip'`, []string{"/opt/my python/pip"}},
		{`/opt/my\ python/pip`, []string{"/opt/my python/pip"}},
		{`say "it's"`, []string{"say", "it's"}},
		{`say 'a "b"'`, []string{"say", `a "b"`}},
		{`a ""`, []string{"a", ""}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitCommand(tt.input))
		})
	}
}

// TestShellEscape tests the behavior of ShellEscape.
func TestShellEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"requests", "requests"},
		{"requests==2.31.0", "requests==2.31.0"},
		{"zope.interface", "zope.interface"},
		{"", "''"},
		{"has space", "'has space'"},
		{"it's", `'it'\''s'`},
		{"a;rm -rf", "'a;rm -rf'"},
		{"pkg[extra]", "'pkg[extra]'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShellEscape(tt.input))
		})
	}
}

// TestJoinCommand tests rendering an argv as a command line.
func TestJoinCommand(t *testing.T) {
	assert.Equal(t, "pip install --upgrade requests", JoinCommand([]string{"pip", "install", "--upgrade", "requests"}))
	assert.Equal(t, "'/opt/my python/pip' install x==1.0", JoinCommand([]string{"/opt/my python/pip", "install", "x==1.0"}))
}

// TestExecuteSimpleCommand tests running a real command.
func TestExecuteSimpleCommand(t *testing.T) {
	skipOnWindows(t)

	out, err := Execute([]string{"echo", "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

// TestExecuteEmptyCommand tests that an empty argv is rejected.
func TestExecuteEmptyCommand(t *testing.T) {
	_, err := Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty command")

	_, err = Execute([]string{" "})
	require.Error(t, err)
}

// TestExecuteCommandNotFound tests a missing executable.
func TestExecuteCommandNotFound(t *testing.T) {
	_, err := Execute([]string{"pipcheck-definitely-not-installed-xyz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipcheck-definitely-not-installed-xyz")
}

// TestExecuteNonZeroExit tests how non-zero exits are reported.
//
// It verifies:
//   - stdout is still returned when the command printed something, with a warning
//   - stderr is folded into the error when stdout is empty
//   - the bare exit error is returned when both are empty
func TestExecuteNonZeroExit(t *testing.T) {
	skipOnWindows(t)

	t.Run("stdout returned", func(t *testing.T) {
		var warned bytes.Buffer
		restore := warnings.SetWarningWriter(&warned)
		defer restore()

		out, err := Execute([]string{"sh", "-c", "echo '[]'; exit 1"})
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(out))
		assert.Contains(t, warned.String(), "Warning: sh -c echo '[]'; exit 1 exited with exit status 1")
	})

	t.Run("stderr in error", func(t *testing.T) {
		_, err := Execute([]string{"sh", "-c", "echo broken >&2; exit 2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("bare error", func(t *testing.T) {
		_, err := Execute([]string{"sh", "-c", "exit 3"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exit status 3")
	})
}
