package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipcheck/pkg/config"
	"github.com/ajxudir/pipcheck/pkg/errors"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configPathFlag          string
)

var (
	loadConfigFunc = config.Load
	writeFileFunc  = os.WriteFile
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, validate, or create configuration",
	Long:  `Show the default or effective settings, validate a config file, or create a .pipcheck.yml template.`,
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .pipcheck.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .pipcheck.yml template file
//   - --validate: Loads the configuration and reports whether it is valid
//   - --show-defaults: Displays the built-in default configuration
//   - --show-effective: Displays the merged settings used by a check
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case configInitFlag:
		return createConfigTemplate(cmd)

	case configValidateFlag:
		workDir, _ := os.Getwd()
		if _, err := loadConfigFunc(configPathFlag, workDir); err != nil {
			return errors.NewExitError(errors.ExitFailure, fmt.Errorf("configuration validation failed: %w", err))
		}
		_, _ = fmt.Fprintln(out, "Configuration valid")
		return nil

	case configShowDefaultsFlag:
		_, _ = fmt.Fprintln(out, "Default configuration:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, config.GetDefaultConfig())
		return nil

	case configShowEffectiveFlag:
		workDir, _ := os.Getwd()
		settings, err := loadConfigFunc(configPathFlag, workDir)
		if err != nil {
			return errors.NewExitError(errors.ExitFailure, fmt.Errorf("failed to load config: %w", err))
		}
		_, _ = fmt.Fprintln(out, "Effective configuration:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "  Command:             %s\n", settings.Cmd)
		_, _ = fmt.Fprintf(out, "  Min manager version: %s\n", settings.MinManagerVersion)
		_, _ = fmt.Fprintf(out, "  Truncate length:     %d\n", settings.TruncateLength)
		_, _ = fmt.Fprintf(out, "  Index URL:           %s\n", settings.IndexURL)
		return nil
	}

	return cmd.Help()
}

// createConfigTemplate writes the default configuration to .pipcheck.yml in
// the current directory. It fails if the file already exists.
func createConfigTemplate(cmd *cobra.Command) error {
	configPath := config.LocalConfigNames[0]
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFileFunc(configPath, []byte(config.GetDefaultConfig()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created configuration template: %s\n", configPath)
	return nil
}
