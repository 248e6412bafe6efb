package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "taskman.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
}

func TestParseFlags_Overrides(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	err := parseFlags(&cfg, []string{"-a", "https://api.example.com", "-t", "30", "-unrelated", "x"})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "taskman.db", cfg.DatabasePath, "untouched flag keeps its default")
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("TASKMAN_SERVER_URL", "https://env.example.com")
	t.Setenv("TASKMAN_REQUEST_TIMEOUT", "45s")
	t.Setenv("TASKMAN_LOG_PRETTY", "false")

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.LogPretty, "environment must beat the non-zero default")
	assert.Equal(t, "info", cfg.LogLevel, "unset variables leave the value alone")
}

func TestParseJSONFile_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskman.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "https://file.example.com",
		"request_timeout": "20s",
		"log_pretty": false
	}`), 0o600))

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseJSONFile(&cfg, path))

	assert.Equal(t, "https://file.example.com", cfg.ServerURL)
	assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "taskman.db", cfg.DatabasePath, "absent key keeps its default")
}

func TestParseJSONFile_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskman.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout": "soon"}`), 0o600))

	var cfg Config
	cfg.LoadDefaults()
	require.Error(t, parseJSONFile(&cfg, path))
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("TASKMAN_SERVER_URL", "https://env.example.com")

	cfg, err := LoadConfig([]string{"-a", "https://flag.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.ServerURL)
}
