package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/pipcheck/pkg/errors"
)

// TestConfigShowDefaults tests the default configuration output.
func TestConfigShowDefaults(t *testing.T) {
	chdirTemp(t)

	out, err := runCLI(t, nil, "config", "--show-defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "Default configuration:")
	assert.Contains(t, out, "cmd: pip")
	assert.Contains(t, out, "truncate_length: 10")
}

// TestConfigShowEffective tests that local overrides are merged over defaults.
func TestConfigShowEffective(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pipcheck.yml"), []byte("cmd: python3 -m pip\n"), 0600))

	out, err := runCLI(t, nil, "config", "--show-effective")
	require.NoError(t, err)
	assert.Contains(t, out, "Command:             python3 -m pip")
	assert.Contains(t, out, "Min manager version: 9.0")
	assert.Contains(t, out, "Index URL:           https://pypi.org/project/%s/")
}

// TestConfigValidate tests validation of good and bad config files.
//
// It verifies:
//   - A valid file reports "Configuration valid"
//   - Unknown fields fail with exit code 1
//   - Invalid values fail with exit code 1
func TestConfigValidate(t *testing.T) {
	dir := chdirTemp(t)

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("truncate_length = 20\n"), 0600))
	out, err := runCLI(t, nil, "config", "--validate", "-c", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")

	unknown := filepath.Join(dir, "unknown.yml")
	require.NoError(t, os.WriteFile(unknown, []byte("commnd: pip\n"), 0600))
	_, err = runCLI(t, nil, "config", "--validate", "-c", unknown)
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
	assert.Contains(t, err.Error(), "configuration validation failed")

	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalid, []byte("truncate_length: 0\n"), 0600))
	_, err = runCLI(t, nil, "config", "--validate", "-c", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncate_length")
}

// TestConfigInit tests template creation.
func TestConfigInit(t *testing.T) {
	dir := chdirTemp(t)

	out, err := runCLI(t, nil, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created configuration template: .pipcheck.yml")

	data, err := os.ReadFile(filepath.Join(dir, ".pipcheck.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "min_manager_version")

	_, err = runCLI(t, nil, "config", "--init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

// TestConfigInitWriteError tests that write failures are reported.
func TestConfigInitWriteError(t *testing.T) {
	chdirTemp(t)
	oldWrite := writeFileFunc
	writeFileFunc = func(string, []byte, os.FileMode) error { return os.ErrPermission }
	defer func() { writeFileFunc = oldWrite }()

	_, err := runCLI(t, nil, "config", "--init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config file")
}

// TestConfigNoFlags tests that the config command prints help without flags.
func TestConfigNoFlags(t *testing.T) {
	chdirTemp(t)

	out, err := runCLI(t, nil, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "--show-defaults")
}
