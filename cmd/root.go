// Package cmd implements the command-line interface for pipcheck.
// The root command queries the package manager, classifies every installed
// package by update severity, and prints the result as tables or as JSON,
// CSV, or XML.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipcheck/pkg/cmdexec"
	"github.com/ajxudir/pipcheck/pkg/errors"
	"github.com/ajxudir/pipcheck/pkg/output"
	"github.com/ajxudir/pipcheck/pkg/verbose"
)

var exitFunc = os.Exit

// executeFunc runs package manager commands; nil selects cmdexec.Execute.
var executeFunc cmdexec.ExecuteFunc

var (
	verboseFlag       bool
	versionFlag       bool
	noColorFlag       bool
	asciiFlag         bool
	cmdFlag           string
	notRequiredFlag   bool
	fullVersionFlag   bool
	hideUnchangedFlag bool
	showUpdateFlag    bool
	configFlag        string
	outputFlag        string
)

var rootCmd = &cobra.Command{
	Use:   "pipcheck",
	Short: "Show outdated Python packages grouped by update severity",
	Long: `Query pip for installed packages and show which ones have major or minor
releases available, which are up to date, and which could not be classified.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		if noColorFlag {
			output.SetColorEnabled(false)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag {
			printVersionOutput(cmd.OutOrStdout())
			return nil
		}
		return runCheck(cmd, args)
	},
}

// Execute runs the root command and exits with the appropriate code:
//   - 0: Success, including "No outdated packages."
//   - 1: Unsupported package manager, unreadable output, or invalid configuration
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		code := errors.GetExitCode(err)
		verbose.Printf("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	// -v/--version is local so it only works on the root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	flags := rootCmd.Flags()
	flags.BoolVar(&asciiFlag, "ascii", false, "Draw tables with plain ASCII borders")
	flags.StringVar(&cmdFlag, "cmd", "", "Package manager command (default from config: pip)")
	flags.BoolVar(&notRequiredFlag, "not-required", false, "List only packages that are not dependencies of other packages")
	flags.BoolVar(&fullVersionFlag, "full-version", false, "Show full version strings without truncation")
	flags.BoolVar(&hideUnchangedFlag, "hide-unchanged", false, "Do not list up-to-date packages")
	flags.BoolVar(&showUpdateFlag, "show-update", false, "Show install commands and combined upgrade hints")
	flags.StringVarP(&configFlag, "config", "c", "", "Config file path (default: .pipcheck.yml in the current directory)")
	flags.StringVarP(&outputFlag, "output", "o", "table", "Output format: table, json, csv, xml")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
