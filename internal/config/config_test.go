package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "text", cfg.Logging.Format)
	require.Equal(t, 10, cfg.Render.ColumnWidth)
	require.Equal(t, ",", cfg.Render.CSVSeparator)
	require.Empty(t, cfg.Render.Encodings)
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("GRIDTEXT_LOG_LEVEL", "debug")
	t.Setenv("GRIDTEXT_LOG_FORMAT", "json")
	t.Setenv("GRIDTEXT_COLUMN_WIDTH", "7")
	t.Setenv("GRIDTEXT_CSV_SEPARATOR", "auto")
	t.Setenv("GRIDTEXT_ENCODINGS", "UTF-8, Windows 1252,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, 7, cfg.Render.ColumnWidth)
	require.Equal(t, "auto", cfg.Render.CSVSeparator)
	require.Equal(t, []string{"UTF-8", "Windows 1252"}, cfg.Render.Encodings)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "level", env: "GRIDTEXT_LOG_LEVEL", value: "loud"},
		{name: "format", env: "GRIDTEXT_LOG_FORMAT", value: "xml"},
		{name: "width not a number", env: "GRIDTEXT_COLUMN_WIDTH", value: "wide"},
		{name: "width zero", env: "GRIDTEXT_COLUMN_WIDTH", value: "0"},
		{name: "separator", env: "GRIDTEXT_CSV_SEPARATOR", value: ";;"},
		{name: "encoding", env: "GRIDTEXT_ENCODINGS", value: "EBCDIC-42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.env)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	err := os.WriteFile(envFile, []byte("GRIDTEXT_COLUMN_WIDTH=12\nGRIDTEXT_LOG_LEVEL=error\n"), 0o600)
	require.NoError(t, err)

	// godotenv does not overwrite set variables
	t.Setenv("GRIDTEXT_LOG_LEVEL", "info")
	// Registers the restore of the variable set by godotenv
	t.Setenv("GRIDTEXT_COLUMN_WIDTH", "")
	os.Unsetenv("GRIDTEXT_COLUMN_WIDTH")

	cfg, err := LoadDotEnv(envFile, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Render.ColumnWidth)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Render:  RenderConfig{ColumnWidth: 8, CSVSeparator: ";"},
	}
	require.Contains(t, cfg.String(), `ColumnWidth: 8`)
	require.Contains(t, cfg.String(), `CSVSeparator: ";"`)
}
