// Package iofs prepares directories and files consmeta relies on.
package iofs

import (
	_ "embed"
	"errors"
	"os"

	"github.com/enadata/consmeta/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config and log directories if they are missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists already.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// CheckClientLibDir makes sure the Oracle client library directory
// is set and exists.
func CheckClientLibDir(dir string) error {
	if dir == "" {
		return ClientLibDirError(dir, errors.New("directory is not set"))
	}
	info, err := os.Stat(dir)
	if err != nil {
		return ClientLibDirError(dir, err)
	}
	if !info.IsDir() {
		return ClientLibDirError(dir, errors.New("not a directory"))
	}
	return nil
}
