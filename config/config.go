// Package config holds the command line tool's settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	REPL    REPLConfig    `yaml:"repl"`
	Batch   BatchConfig   `yaml:"batch"`
	UI      UIConfig      `yaml:"ui"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
}

// REPLConfig configures the interactive prompt
type REPLConfig struct {
	HistoryFile string `yaml:"history_file"` // empty disables history
	Prompt      string `yaml:"prompt"`
}

// BatchConfig configures the batch command
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// UIConfig configures the terminal UI
type UIConfig struct {
	Theme string `yaml:"theme"` // dark, light
}

// ServerConfig configures the serve command
type ServerConfig struct {
	Listen      string        `yaml:"listen"`
	IdleTimeout time.Duration `yaml:"idle_timeout"` // zero disables
}

// DisplayConfig configures how reports are printed
type DisplayConfig struct {
	Verify bool `yaml:"verify"` // check every example with LooselyEqual
}

// DefaultPath is the configuration file used when none is given
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "looseeq.yaml"
	}
	return filepath.Join(dir, "looseeq", "config.yaml")
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".looseeq_history")
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		REPL: REPLConfig{
			HistoryFile: defaultHistoryFile(),
			Prompt:      "x = ",
		},
		Batch: BatchConfig{
			Workers: runtime.NumCPU(),
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Server: ServerConfig{
			Listen:      "127.0.0.1:7777",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("LOOSEEQ_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("LOOSEEQ_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if history, ok := os.LookupEnv("LOOSEEQ_HISTORY"); ok {
		c.REPL.HistoryFile = history
	}
	if listen := os.Getenv("LOOSEEQ_LISTEN"); listen != "" {
		c.Server.Listen = listen
	}
	if workers := os.Getenv("LOOSEEQ_WORKERS"); workers != "" {
		if n, err := strconv.Atoi(workers); err == nil {
			c.Batch.Workers = n
		}
	}
}

// ValidThemes lists the terminal UI color themes
var ValidThemes = []string{"dark", "light"}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}

	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen must not be empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	return nil
}
