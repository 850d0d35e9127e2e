// Package constants provides centralized string constants used throughout the application.
package constants

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a version is not available.
	PlaceholderNA = "#N/A"
)

// Column headings shared by every bucket table. The first column is headed
// by the bucket title.
const (
	HeaderInstalled = "Installed"
	HeaderLatest    = "Latest"
	HeaderHelp      = "Help"
)

// Upgrade hint text.
const (
	// HintIntro introduces the combined upgrade command of a bucket; %s is the
	// bucket key ("major" or "minor").
	HintIntro = "To update %s releases run:"

	// InstallVerb is the package manager subcommand used in printed commands.
	InstallVerb = "install"

	// UpgradeFlag is added to combined upgrade commands.
	UpgradeFlag = "--upgrade"
)
