// Package internal provides version information and build metadata for the WoWSafe application.
//
// This module centralizes all version-related constants and provides formatted strings
// for consistent display across the application. To update the version, simply change
// the AppVersion constant - all other version strings will be automatically updated.
package internal

// Application metadata constants.
//
// TO UPDATE THE VERSION: Change only AppVersion below - all other version-related
// strings throughout the application will be automatically updated.
const (
	// AppName is the official name of the application
	AppName = "WoWSafe"

	// AppVersion follows semantic versioning (major.minor.patch)
	AppVersion = "0.4.2"

	// AppDesc is the tagline/description used in UI and documentation
	AppDesc = "Character Settings Backup & Restore for World of Warcraft"
)

// GetVersionString returns just the version number for programmatic use.
// Example: "0.4.2"
func GetVersionString() string {
	return AppVersion
}

// GetFullVersionString returns the application name with version for display.
// Example: "WoWSafe v0.4.2"
func GetFullVersionString() string {
	return AppName + " v" + AppVersion
}

// GetAppTitle returns the complete application title including description.
// Used for window titles and main application headers.
func GetAppTitle() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}

// GetSubtitle returns a compact version string for UI footers.
func GetSubtitle() string {
	return "v" + AppVersion
}

// GetAboutText returns the standard about text for help screens.
func GetAboutText() string {
	return AppName + " v" + AppVersion + " - " + AppDesc
}
