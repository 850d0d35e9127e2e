// Package query asks the package manager which packages are installed and
// which are outdated.
//
// It runs three commands, strictly one after another:
//
//	<cmd> --version
//	<cmd> list --outdated --format=json [--not-required]
//	<cmd> list --uptodate --format=json [--not-required]
//
// The last one is skipped when up-to-date packages are hidden.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/ajxudir/pipcheck/pkg/cmdexec"
	"github.com/ajxudir/pipcheck/pkg/config"
	"github.com/ajxudir/pipcheck/pkg/errors"
	"github.com/ajxudir/pipcheck/pkg/verbose"
)

// ProgressMessage is written before any package manager command runs.
const ProgressMessage = "Loading package versions..."

var (
	// leadingVersionPattern reads the token after the program name, e.g. the
	// "23.1.2" in "pip 23.1.2 from /usr/lib/python3.11/site-packages/pip".
	// A bare major such as "pip 9" counts as 9.0.
	leadingVersionPattern = regexp.MustCompile(`^\S+\s+v?(\d+)(?:\.(\d+))?\b`)

	// managerVersionPattern finds the first dotted major.minor anywhere in
	// the output; used when the first line has another shape.
	managerVersionPattern = regexp.MustCompile(`(\d+)\.(\d+)`)
)

// PackageRecord is one package as reported by the package manager.
//
// Fields:
//   - Name: Package name
//   - Version: Installed version; empty when absent
//   - LatestVersion: Newest available version; empty when absent
type PackageRecord struct {
	Name          string `json:"name"`
	Version       string `json:"version,omitempty"`
	LatestVersion string `json:"latest_version,omitempty"`
}

// HasVersion reports whether the installed version is present.
func (r PackageRecord) HasVersion() bool {
	return strings.TrimSpace(r.Version) != ""
}

// HasLatest reports whether the latest version is present.
func (r PackageRecord) HasLatest() bool {
	return strings.TrimSpace(r.LatestVersion) != ""
}

// Options selects what Run queries.
//
// Fields:
//   - NotRequired: Restrict listings to top-level packages (--not-required)
//   - HideUnchanged: Skip the up-to-date listing entirely
type Options struct {
	NotRequired   bool
	HideUnchanged bool
}

// Result holds the raw records of one run, in the order the package
// manager reported them.
type Result struct {
	ManagerVersion string
	Outdated       []PackageRecord
	UpToDate       []PackageRecord
}

// Querier runs the package manager commands.
type Querier struct {
	settings config.Settings
	exec     cmdexec.ExecuteFunc
	progress io.Writer
	argv     []string
}

// New creates a Querier.
//
// Parameters:
//   - settings: Run settings; Cmd and MinManagerVersion are used here
//   - exec: Command runner; nil selects cmdexec.Execute
//   - progress: Destination of the progress message; nil discards it
//
// Returns:
//   - *Querier: A querier ready to Run
func New(settings config.Settings, exec cmdexec.ExecuteFunc, progress io.Writer) *Querier {
	if exec == nil {
		exec = cmdexec.Execute
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Querier{
		settings: settings,
		exec:     exec,
		progress: progress,
		argv:     cmdexec.SplitCommand(settings.Cmd),
	}
}

// Run performs the full query: version check, outdated listing, and
// (unless opts.HideUnchanged) the up-to-date listing. The progress message
// is written before the first command runs.
//
// Returns:
//   - Result: Records from both listings
//   - error: VersionUnmetError, EmptyOutputError, ParseError, or an execution error
func (q *Querier) Run(opts Options) (Result, error) {
	_, _ = fmt.Fprintln(q.progress, ProgressMessage)

	managerVersion, err := q.CheckManager()
	if err != nil {
		return Result{}, err
	}

	outdated, err := q.Outdated(opts.NotRequired)
	if err != nil {
		return Result{}, err
	}

	result := Result{ManagerVersion: managerVersion, Outdated: outdated}
	if opts.HideUnchanged {
		verbose.Printf("Skipping up-to-date query")
		return result, nil
	}

	result.UpToDate, err = q.UpToDate(opts.NotRequired)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// CheckManager verifies the package manager version.
//
// It performs the following operations:
//   - Step 1: Runs "<cmd> --version"
//   - Step 2: Fails when the command errors or prints nothing
//   - Step 3: Extracts major.minor from the token after the program name,
//     falling back to the first dotted major.minor anywhere in the output
//   - Step 4: Compares it with settings.MinManagerVersion
//
// Returns:
//   - string: The detected "major.minor"
//   - error: *errors.VersionUnmetError when the requirement is not met
func (q *Querier) CheckManager() (string, error) {
	required := q.settings.MinManagerVersion
	unmet := func(found, reason string) error {
		return &errors.VersionUnmetError{Command: q.settings.Cmd, Found: found, Required: required, Reason: reason}
	}

	if len(q.argv) == 0 {
		return "", unmet("", "no package manager command configured")
	}

	out, err := q.exec(q.command("--version"))
	if err != nil {
		return "", unmet("", fmt.Sprintf("could not read version: %v", err))
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", unmet("", "could not read version: empty output")
	}

	found, ok := managerVersion(text)
	if !ok {
		return "", unmet("", fmt.Sprintf("could not read version from %q", text))
	}

	verbose.Printf("Package manager version: %s (required: %s)", found, required)
	if semver.Compare(canonical(found), canonical(required)) < 0 {
		return found, unmet(found, "version too old")
	}
	return found, nil
}

// Outdated lists packages with a newer version available.
//
// An empty listing ends the run with *errors.EmptyOutputError.
//
// Parameters:
//   - notRequired: Restrict to top-level packages
//
// Returns:
//   - []PackageRecord: Outdated packages in reported order
//   - error: EmptyOutputError, ParseError, or an execution error
func (q *Querier) Outdated(notRequired bool) ([]PackageRecord, error) {
	args := q.listCommand("--outdated", notRequired)
	records, err := q.list(args)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &errors.EmptyOutputError{Command: strings.Join(args, " ")}
	}
	verbose.Printf("Found %d outdated packages", len(records))
	return records, nil
}

// UpToDate lists packages already at their newest version. An empty
// listing is not an error.
func (q *Querier) UpToDate(notRequired bool) ([]PackageRecord, error) {
	records, err := q.list(q.listCommand("--uptodate", notRequired))
	if err != nil {
		return nil, err
	}
	verbose.Printf("Found %d up-to-date packages", len(records))
	return records, nil
}

// list runs a listing command and decodes its JSON output.
func (q *Querier) list(args []string) ([]PackageRecord, error) {
	out, err := q.exec(args)
	if err != nil {
		return nil, err
	}
	return DecodeRecords(out, strings.Join(args, " "))
}

// DecodeRecords decodes a package manager JSON listing.
//
// Whitespace-only output decodes to no records. Anything that is not a JSON
// array of objects with a non-empty "name" fails the whole listing; there is
// no per-record salvage.
//
// Parameters:
//   - data: Raw command output
//   - command: Command line, used in the error message
//
// Returns:
//   - []PackageRecord: Decoded records in order
//   - error: *errors.ParseError when the output is malformed
func DecodeRecords(data []byte, command string) ([]PackageRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var records []PackageRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &errors.ParseError{Command: command, Err: err}
	}

	for i, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, &errors.ParseError{Command: command, Err: fmt.Errorf("record %d has no name", i)}
		}
	}
	return records, nil
}

func (q *Querier) command(extra ...string) []string {
	args := make([]string, 0, len(q.argv)+len(extra))
	args = append(args, q.argv...)
	return append(args, extra...)
}

func (q *Querier) listCommand(filter string, notRequired bool) []string {
	args := q.command("list", filter, "--format=json")
	if notRequired {
		args = append(args, "--not-required")
	}
	return args
}

// managerVersion extracts "major.minor" from --version output.
func managerVersion(text string) (string, bool) {
	if match := leadingVersionPattern.FindStringSubmatch(text); match != nil {
		minor := match[2]
		if minor == "" {
			minor = "0"
		}
		return match[1] + "." + minor, true
	}
	if match := managerVersionPattern.FindStringSubmatch(text); match != nil {
		return match[1] + "." + match[2], true
	}
	return "", false
}

// canonical converts "major.minor" into the "vMAJOR.MINOR" form semver
// expects, dropping leading zeros that semver would reject.
func canonical(v string) string {
	parts := strings.Split(strings.TrimPrefix(v, "v"), ".")
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			parts[i] = strconv.Itoa(n)
		}
	}
	return "v" + strings.Join(parts, ".")
}
