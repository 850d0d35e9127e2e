package display

import (
	"strings"

	"github.com/ajxudir/pipcheck/pkg/cmdexec"
	"github.com/ajxudir/pipcheck/pkg/config"
	"github.com/ajxudir/pipcheck/pkg/constants"
	"github.com/ajxudir/pipcheck/pkg/query"
	"github.com/ajxudir/pipcheck/pkg/utils"
)

// SafeVersionValue returns a display-safe version string.
//
// If the value is empty or whitespace-only, returns "#N/A" for consistent display.
// Otherwise returns the trimmed value.
//
// Parameters:
//   - val: The version string, may be empty
//
// Returns:
//   - string: The value or "#N/A" if empty
//
// Example:
//
//	display.SafeVersionValue("")      // Returns "#N/A"
//	display.SafeVersionValue("1.2.3") // Returns "1.2.3"
func SafeVersionValue(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return constants.PlaceholderNA
	}
	return val
}

// InstalledValue returns the Installed cell for a record.
//
// Parameters:
//   - r: The package record
//   - settings: Supplies the truncation length
//   - full: Disables truncation
//
// Returns:
//   - string: The installed version, possibly truncated, or "#N/A"
func InstalledValue(r query.PackageRecord, settings config.Settings, full bool) string {
	if !r.HasVersion() {
		return constants.PlaceholderNA
	}
	return shorten(strings.TrimSpace(r.Version), settings, full)
}

// LatestValue returns the Latest cell for a record.
//
// When the latest version is absent the installed version is repeated, which
// is the normal case for up-to-date packages. When both are absent the
// placeholder is returned.
//
// Parameters:
//   - r: The package record
//   - settings: Supplies the truncation length
//   - full: Disables truncation
//
// Returns:
//   - string: The latest (or installed) version, possibly truncated, or "#N/A"
func LatestValue(r query.PackageRecord, settings config.Settings, full bool) string {
	if r.HasLatest() {
		return shorten(strings.TrimSpace(r.LatestVersion), settings, full)
	}
	return InstalledValue(r, settings, full)
}

// HelpValue returns the Help cell for a record: the package index URL, or an
// exact install command when showUpdate is set and the latest version is known.
func HelpValue(r query.PackageRecord, settings config.Settings, showUpdate bool) string {
	if showUpdate && r.HasLatest() {
		return InstallCommand(settings, r)
	}
	return settings.PackageURL(r.Name)
}

// InstallCommand returns "<cmd> install <name>==<latest>" with the pin
// shell-escaped.
func InstallCommand(settings config.Settings, r query.PackageRecord) string {
	pin := r.Name + "==" + strings.TrimSpace(r.LatestVersion)
	return cmdexec.JoinCommand(append(cmdexec.SplitCommand(settings.Cmd), constants.InstallVerb, pin))
}

// UpgradeCommand returns "<cmd> install --upgrade <name> ..." for records.
func UpgradeCommand(settings config.Settings, records []query.PackageRecord) string {
	args := append(cmdexec.SplitCommand(settings.Cmd), constants.InstallVerb, constants.UpgradeFlag)
	for _, r := range records {
		args = append(args, r.Name)
	}
	return cmdexec.JoinCommand(args)
}

func shorten(val string, settings config.Settings, full bool) string {
	if full {
		return val
	}
	return utils.Truncate(val, settings.TruncateLength)
}
