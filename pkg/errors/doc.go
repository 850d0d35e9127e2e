// Package errors provides the error types and exit codes for pipcheck.
//
// Every failure is terminal for the current invocation; nothing is retried:
//   - VersionUnmetError: the package manager is too old or its version is unreadable
//   - ParseError: the package manager produced output that is not valid JSON
//   - EmptyOutputError: there are no outdated packages (reported as success)
//   - ExitError: command exit with a specific exit code
//
// Error Display:
//
//	errors.PrintError(os.Stderr, err)
//
// Exit Codes:
//   - ExitSuccess (0): Completed, including the "nothing outdated" case
//   - ExitFailure (1): Version requirement unmet, unparseable output, or bad configuration
package errors
