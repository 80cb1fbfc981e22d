package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "consmeta"

	// ClientLibEnv is the environment variable that points to Oracle
	// client libraries.
	ClientLibEnv = "ORACLE_CLIENT_LIB"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/consmeta by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/consmeta/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/consmeta/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// OutputPath returns the spreadsheet location for a project.
func (c *Config) OutputPath(projectID string) string {
	return filepath.Join(c.Output.Dir, projectID+c.Output.Suffix)
}
