package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "x = ", cfg.REPL.Prompt)
	assert.GreaterOrEqual(t, cfg.Batch.Workers, 1)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("LOOSEEQ_LOG_LEVEL", "")
	t.Setenv("LOOSEEQ_WORKERS", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Logging, cfg.Logging)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("LOOSEEQ_LOG_LEVEL", "")
	t.Setenv("LOOSEEQ_WORKERS", "")
	t.Setenv("LOOSEEQ_LISTEN", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
logging:
  level: debug
  format: json
batch:
  workers: 3
display:
  verify: true
server:
  idle_timeout: 30s
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 3, cfg.Batch.Workers)
	assert.True(t, cfg.Display.Verify)
	assert.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "127.0.0.1:7777", cfg.Server.Listen)
	// untouched sections keep their defaults
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("LOOSEEQ_LOG_LEVEL", "")
	t.Setenv("LOOSEEQ_WORKERS", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.Theme = "light"
	cfg.REPL.HistoryFile = ""
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.Equal(t, "", loaded.REPL.HistoryFile)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("log level and format", func(t *testing.T) {
		t.Setenv("LOOSEEQ_LOG_LEVEL", "error")
		t.Setenv("LOOSEEQ_LOG_FORMAT", "json")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("empty history disables it", func(t *testing.T) {
		t.Setenv("LOOSEEQ_HISTORY", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "", cfg.REPL.HistoryFile)
	})

	t.Run("listen", func(t *testing.T) {
		t.Setenv("LOOSEEQ_LISTEN", ":9000")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, ":9000", cfg.Server.Listen)
	})

	t.Run("workers", func(t *testing.T) {
		t.Setenv("LOOSEEQ_WORKERS", "7")

		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.Equal(t, 7, cfg.Batch.Workers)
	})

	t.Run("malformed workers ignored", func(t *testing.T) {
		t.Setenv("LOOSEEQ_WORKERS", "many")

		cfg := &Config{Batch: BatchConfig{Workers: 2}}
		cfg.applyEnvOverrides()
		assert.Equal(t, 2, cfg.Batch.Workers)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid logging.format"},
		{"no workers", func(c *Config) { c.Batch.Workers = 0 }, "batch.workers must be at least 1"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid ui.theme"},
		{"no listen address", func(c *Config) { c.Server.Listen = "" }, "server.listen must not be empty"},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeout = -time.Second }, "server.idle_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := LoggingConfig{Level: "debug", Format: "json"}.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	_, err = LoggingConfig{Level: "nope", Format: "console"}.NewLogger()
	require.Error(t, err)
}
