package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional user configuration loaded from
// ~/.config/mindweave/config.toml. Flags override config values; the
// MINDWEAVE_API_KEY environment variable overrides the draft key.
type Config struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Theme   string   `toml:"theme"`
	Formats []string `toml:"formats"`
	Output  string   `toml:"output"`

	Board BoardConfig `toml:"board"`
	Draft DraftConfig `toml:"draft"`
	Serve ServeConfig `toml:"serve"`
}

// BoardConfig configures the publish command's MongoDB connection.
type BoardConfig struct {
	URI string `toml:"uri"`
}

// DraftConfig configures the draft command's completion endpoint.
type DraftConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr     string `toml:"addr"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// ConfigPath returns the config file path using XDG standard
// (~/.config/mindweave/config.toml).
func ConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads the TOML config at path. A missing or empty path yields a
// zero config without error; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
