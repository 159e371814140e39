package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	}
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.True(t, cfg.Ollama.Enabled)
	assert.Equal(t, "llama3.2", cfg.Ollama.Model)
	assert.Equal(t, 30*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, uint32(3), cfg.Ollama.MaxFailures)
	assert.Equal(t, "Europe/Paris", cfg.Interpreter.Timezone)
	assert.Equal(t, 10, cfg.Interpreter.HistorySize)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
	assert.Equal(t, 60, cfg.RateLimit.PerMin)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "mistral")
	v := newViper(t, `
http_server:
  port: 9090
ollama:
  enabled: false
  timeout: 5s
  breaker:
    max_failures: 5
interpreter:
  timezone: UTC
  history_size: 4
storage:
  sqlite_path: ":memory:"
`)

	cfg, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.False(t, cfg.Ollama.Enabled)
	assert.Equal(t, "mistral", cfg.Ollama.Model)
	assert.Equal(t, 5*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, uint32(5), cfg.Ollama.MaxFailures)
	assert.Equal(t, "UTC", cfg.Interpreter.Timezone)
	assert.Equal(t, 4, cfg.Interpreter.HistorySize)
	assert.Equal(t, ":memory:", cfg.Storage.SQLitePath)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"timezone":     "interpreter:\n  timezone: Mars/Olympus\n",
		"port":         "http_server:\n  port: 70000\n",
		"history size": "interpreter:\n  history_size: 0\n",
		"rate limit":   "rate_limit:\n  per_min: -1\n",
		"bad yaml":     "http_server: [",
	}
	for name, yaml := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := load(newViper(t, yaml))
			assert.Error(t, err)
		})
	}
}
