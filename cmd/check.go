package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/pipcheck/pkg/classify"
	"github.com/ajxudir/pipcheck/pkg/config"
	"github.com/ajxudir/pipcheck/pkg/display"
	"github.com/ajxudir/pipcheck/pkg/errors"
	"github.com/ajxudir/pipcheck/pkg/output"
	"github.com/ajxudir/pipcheck/pkg/preflight"
	"github.com/ajxudir/pipcheck/pkg/query"
	"github.com/ajxudir/pipcheck/pkg/verbose"
)

// preflightFunc checks that the package manager executable exists.
var preflightFunc = preflight.ValidateCommand

// runCheck executes the package check.
//
// It performs the following operations:
//   - Step 1: Parses the output format and loads settings, applying --cmd
//   - Step 2: Checks that the package manager executable exists
//   - Step 3: Queries the package manager (progress is shown for tables only)
//   - Step 4: Classifies the records into buckets
//   - Step 5: Prints the tables and upgrade hints, or the structured report
//
// An empty outdated listing is a successful run: it prints
// "No outdated packages." (or an empty report) and returns nil.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Configuration, version, parse, or execution error
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	settings, err := loadSettings()
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	if err := preflightFunc(settings.Cmd); err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	out := cmd.OutOrStdout()
	structured := output.IsStructuredFormat(format)

	var progress io.Writer
	if !structured {
		progress = out
	}

	result, err := query.New(settings, executeFunc, progress).Run(query.Options{
		NotRequired:   notRequiredFlag,
		HideUnchanged: hideUnchangedFlag,
	})
	if empty, ok := errors.IsEmptyOutput(err); ok {
		verbose.Printf("Nothing outdated: %s", empty.Command)
		if structured {
			return output.WriteReport(out, format, display.BuildReport(classify.ClassifiedSet{}, settings, showUpdateFlag))
		}
		_, _ = fmt.Fprintln(out, empty.Error())
		return nil
	}
	if err != nil {
		return err
	}

	set := classify.Classify(result.Outdated, result.UpToDate)

	if structured {
		return output.WriteReport(out, format, display.BuildReport(set, settings, showUpdateFlag))
	}

	border := output.BorderBox
	if asciiFlag {
		border = output.BorderASCII
	}
	presenter := display.NewPresenter(out, output.NewTableRenderer(), settings, display.Options{
		Border:      border,
		FullVersion: fullVersionFlag,
		ShowUpdate:  showUpdateFlag,
	})
	if err := presenter.Render(set); err != nil {
		return err
	}
	presenter.RenderHints(set)
	return nil
}

// loadSettings loads the config file and applies the --cmd override.
func loadSettings() (config.Settings, error) {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	settings, err := config.Load(configFlag, workDir)
	if err != nil {
		return config.Settings{}, err
	}

	if cmdFlag != "" {
		verbose.Printf("Package manager command from --cmd: %s", cmdFlag)
		settings.Cmd = cmdFlag
		if err := settings.Validate(); err != nil {
			return config.Settings{}, err
		}
	}
	return settings, nil
}
