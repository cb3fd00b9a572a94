package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "snake.yaml", `
symbols:
  snake: "#"
messages:
  win: "Board cleared!"
`)

	cfg, err := LoadWith(path, "")
	require.NoError(t, err)

	assert.Equal(t, "#", cfg.Symbols.Snake)
	assert.Equal(t, "x", cfg.Symbols.Floor)
	assert.Equal(t, "O", cfg.Symbols.Food)
	assert.Equal(t, "Board cleared!", cfg.Messages.Win)
	assert.Equal(t, "You lose!", cfg.Messages.Lose)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadWith(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err, "missing custom config should fail")

	bad := writeFile(t, dir, "bad.yaml", "symbols: [unterminated")
	_, err = LoadWith(bad, "")
	assert.Error(t, err, "malformed YAML should fail")
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"multi-character symbol", "symbols:\n  floor: \"..\"\n"},
		{"empty symbol", "symbols:\n  food: \"\"\n"},
		{"duplicate symbols", "symbols:\n  food: \"S\"\n"},
		{"bad log level", "log:\n  level: loud\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "snake.yaml", tc.yaml)
			_, err := LoadWith(path, "")
			assert.Error(t, err)
		})
	}
}

func TestDotEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "snake.yaml", "log:\n  level: info\n")
	envFile := writeFile(t, dir, ".env", "SNAKE_DB=/tmp/from-dotenv.db\n")

	cfg, err := LoadWith(path, envFile)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-dotenv.db", cfg.Storage.DB)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestProcessEnvBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "snake.yaml", "log:\n  level: info\n")
	envFile := writeFile(t, dir, ".env", "SNAKE_LOG_LEVEL=error\n")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadWith(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestMissingDotEnvIsIgnored(t *testing.T) {
	path := writeFile(t, t.TempDir(), "snake.yaml", "storage:\n  db: ./h.db\n")

	cfg, err := LoadWith(path, filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "./h.db", cfg.Storage.DB)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.snake/history.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".snake", "history.db"), got)

	got, err = ExpandHome("/var/lib/snake.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/snake.db", got)
}

func TestConfigDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := Default()
	got, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".snake", "history.db"), got)

	cfg.Storage.DB = "./local.db"
	got, err = cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, "./local.db", got)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	logger.Debug("hidden")
	logger.Info("shown", "turn", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "snake")
}

func TestParseLevelDefault(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, lvl)

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}
