// Package constants contains names shared across uiprefs packages.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "uiprefs"

	// SettingsFilename is the flat key=value settings file kept in the home directory.
	SettingsFilename = "uisettings.props"

	// ConfigFilename is the optional YAML config for the uiprefs CLI.
	ConfigFilename = "config.yml"

	// LogFilename is the default log file name.
	LogFilename = "uiprefs.log"
)
