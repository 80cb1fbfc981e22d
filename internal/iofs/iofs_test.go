package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "consmeta")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	logDir := filepath.Join(tmpDir, ".local", "share", "consmeta",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

// TestTouchDir_FileInTheWay verifies a file cannot be
// turned into a directory.
func TestTouchDir_FileInTheWay(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := touchDir(filepath.Join(path, "sub"))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
}

// TestEnsureConfigFile_ContentCorrect verifies config file
// content matches embedded template.
func TestEnsureConfigFile_ContentCorrect(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "consmeta",
		"config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, ConfigYAML, string(content),
		"Config file content should match embedded template")

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "consmeta",
		"config.yaml")

	customContent := "# Custom config\ndatabase:\n  driver: sqlite"
	err = os.WriteFile(configPath, []byte(customContent), 0644)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing config file should not be overwritten")
}

// TestEnsureConfigFile_NoDir verifies missing config
// directory is reported.
func TestEnsureConfigFile_NoDir(t *testing.T) {
	err := EnsureConfigFile(t.TempDir())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CopyFileError, gnErr.Code)
}

// TestConfigYAML_Embedded verifies embedded config is
// valid YAML with expected sections.
func TestConfigYAML_Embedded(t *testing.T) {
	var data map[string]any
	err := yaml.Unmarshal([]byte(ConfigYAML), &data)
	require.NoError(t, err)

	for _, v := range []string{"database", "submission", "output", "log"} {
		assert.Contains(t, data, v)
	}

	db := data["database"].(map[string]any)
	assert.Equal(t, "oracle", db["driver"])
	assert.Equal(t, "ERAPRO", db["service"])
	assert.Equal(t, 1541, db["port"])
}

func TestCheckClientLibDir(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "libclntsh.so")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		msg     string
		dir     string
		wantErr bool
	}{
		{"existing directory", tmpDir, false},
		{"not set", "", true},
		{"missing", filepath.Join(tmpDir, "missing"), true},
		{"file", file, true},
	}

	for _, tt := range tests {
		err := CheckClientLibDir(tt.dir)
		if !tt.wantErr {
			assert.NoError(t, err, tt.msg)
			continue
		}
		require.Error(t, err, tt.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, tt.msg)
		assert.Equal(t, errcode.ClientLibDirError, gnErr.Code, tt.msg)
		assert.Equal(t, []any{"ORACLE_CLIENT_LIB"}, gnErr.Vars, tt.msg)
	}
}
