// Package testutil provides shared test utilities for pipcheck packages.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStderr returns everything written to os.Stderr while fn runs.
//
// cmd.Execute prints errors and hints straight to os.Stderr rather than to
// the cobra writers, so CLI exit-path tests read them through this helper.
// The pipe is drained while fn runs, so long error output cannot block it.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	previous := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = previous }()

	fn()

	_ = w.Close()
	return <-done
}
