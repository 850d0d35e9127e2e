// Package config holds the process-wide settings for pipcheck and loads
// optional overrides from YAML or TOML files.
//
// Settings are an explicit value: the command layer loads them once and
// passes them into the query, classification, and presentation components.
package config

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

// managerVersionPattern matches a dotted major.minor version.
var managerVersionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Settings configures a single pipcheck run.
//
// Fields:
//   - Cmd: Package manager command line (e.g., "pip", "pip3", "python3 -m pip")
//   - MinManagerVersion: Minimum package manager version as "major.minor"
//   - TruncateLength: Maximum displayed version length before truncation
//   - IndexURL: Package index URL template; "%s" is replaced with the package name
type Settings struct {
	Cmd               string `yaml:"cmd" toml:"cmd"`
	MinManagerVersion string `yaml:"min_manager_version" toml:"min_manager_version"`
	TruncateLength    int    `yaml:"truncate_length" toml:"truncate_length"`
	IndexURL          string `yaml:"index_url" toml:"index_url"`
}

// Default returns the built-in settings from the embedded default.yml.
//
// Returns:
//   - Settings: Defaults (pip, 9.0, 10, https://pypi.org/project/%s/)
func Default() Settings {
	s := Settings{
		Cmd:               "pip",
		MinManagerVersion: "9.0",
		TruncateLength:    10,
		IndexURL:          "https://pypi.org/project/%s/",
	}
	// Values from default.yml take precedence.
	_ = yaml.Unmarshal([]byte(defaultConfigYAML), &s)
	return s
}

// GetDefaultConfig returns the embedded default configuration YAML.
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// Validate checks that the settings are usable.
//
// Returns:
//   - error: Describes the first invalid field; nil when all fields are valid
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Cmd) == "" {
		return fmt.Errorf("config: cmd must not be empty")
	}
	if !managerVersionPattern.MatchString(s.MinManagerVersion) {
		return fmt.Errorf("config: min_manager_version %q must be in major.minor form", s.MinManagerVersion)
	}
	if s.TruncateLength <= 0 {
		return fmt.Errorf("config: truncate_length must be positive, got %d", s.TruncateLength)
	}
	if !strings.Contains(s.IndexURL, "%s") {
		return fmt.Errorf("config: index_url %q must contain %%s for the package name", s.IndexURL)
	}
	return nil
}

// PackageURL returns the package index URL for name.
func (s Settings) PackageURL(name string) string {
	return strings.Replace(s.IndexURL, "%s", name, 1)
}
