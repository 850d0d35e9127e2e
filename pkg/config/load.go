package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/pipcheck/pkg/verbose"
)

// DefaultMaxConfigFileSize is the largest config file Load will read (1MB).
const DefaultMaxConfigFileSize int64 = 1 << 20

// LocalConfigNames lists the file names searched in the working directory,
// in priority order.
var LocalConfigNames = []string{".pipcheck.yml", ".pipcheck.yaml", ".pipcheck.toml"}

// Load loads settings from the specified path or the working directory.
//
// It performs the following operations:
//   - Step 1: Starts from Default()
//   - Step 2: If configPath is set, reads that file (an error if it is missing)
//   - Step 3: Otherwise reads the first of LocalConfigNames found in workDir
//   - Step 4: Validates the merged settings
//
// Fields absent from the file keep their default values. Unknown fields are
// rejected so typos do not pass silently.
//
// Parameters:
//   - configPath: Path to a config file, or empty to search workDir
//   - workDir: Directory searched for a local config file
//
// Returns:
//   - Settings: The merged settings
//   - error: When the file cannot be read, decoded, or fails validation
func Load(configPath, workDir string) (Settings, error) {
	settings := Default()

	path := configPath
	if path == "" {
		path = findLocalConfig(workDir)
	}

	if path == "" {
		verbose.ConfigLoaded("built-in defaults")
		return settings, settings.Validate()
	}

	data, err := readConfigFile(path, DefaultMaxConfigFileSize)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := decode(path, data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	verbose.ConfigLoaded(path)
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// findLocalConfig returns the first local config file that exists in dir.
func findLocalConfig(dir string) string {
	for _, name := range LocalConfigNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			verbose.Printf("Found local config: %s", candidate)
			return candidate
		}
	}
	return ""
}

// readConfigFile reads a config file after checking its size.
//
// Parameters:
//   - path: Path to the file
//   - maxSize: Largest accepted size in bytes
//
// Returns:
//   - []byte: File contents
//   - error: When the file is missing, unreadable, or larger than maxSize
func readConfigFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

// decode unmarshals data into settings, choosing the format by extension.
// Files without a .toml extension are read as YAML.
func decode(path string, data []byte, settings *Settings) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(settings); err != nil {
			return fmt.Errorf("invalid TOML: %w", err)
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}
