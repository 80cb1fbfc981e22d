package iologger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/enadata/consmeta/pkg/config"
	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "info", Format: "text"}

	logger := slog.New(newHandler(&buf, cfg))
	logger.Info("test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "level=INFO")
}

func TestNewHandler_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "info", Format: "json"}

	logger := slog.New(newHandler(&buf, cfg))
	logger.Info("test message", "project", "PRJEB1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "PRJEB1", entry["project"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNewHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "warn", Format: "text"}

	logger := slog.New(newHandler(&buf, cfg))
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), tt.input)
	}
}

func TestInit_File(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Level: "info", Format: "json", Destination: "file"}

	err := Init(dir, cfg)
	require.NoError(t, err)

	slog.Info("written to file")

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestInit_MissingDir(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := filepath.Join(t.TempDir(), "no", "such", "dir")
	cfg := config.LogConfig{Destination: "file"}

	err := Init(dir, cfg)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
	assert.Equal(t, filepath.Join(dir, LogFile), gnErr.Vars[0])
	assert.True(t, errors.Is(gnErr.Err, os.ErrNotExist))
}
