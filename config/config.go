// Package config loads runtime settings from TOML: embedded defaults
// first, then the user's config file merged over them.
package config

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	loomruntime "github.com/tuilab/loom/runtime"
)

//go:embed default/config.toml
var configFS embed.FS

// Config is the TOML-facing settings surface. Durations are strings so
// the file can say "250ms" or "1s".
type Config struct {
	TickRate        string `toml:"tick_rate"`
	FrameRate       string `toml:"frame_rate"`
	History         int    `toml:"history"`
	MaxMessages     int    `toml:"max_messages"`
	ChannelCapacity int    `toml:"channel_capacity"`
	Debug           bool   `toml:"debug"`
}

// Load merges TOML data into the config. Keys absent from data keep
// their current values.
func (c *Config) Load(data string) error {
	metadata, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return c.validate()
}

func (c *Config) validate() error {
	for _, d := range []struct {
		key   string
		value string
	}{
		{"tick_rate", c.TickRate},
		{"frame_rate", c.FrameRate},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("invalid %s: %w", d.key, err)
		}
	}
	if c.History < 0 {
		return fmt.Errorf("history must not be negative, got %d", c.History)
	}
	return nil
}

// Runtime converts the file-facing config into runtime settings.
// Unset or invalid fields fall back to the runtime defaults.
func (c *Config) Runtime() loomruntime.Config {
	rc := loomruntime.Config{
		History:         c.History,
		MaxMessages:     c.MaxMessages,
		ChannelCapacity: c.ChannelCapacity,
	}
	if d, err := time.ParseDuration(c.TickRate); err == nil {
		rc.TickRate = d
	}
	if d, err := time.ParseDuration(c.FrameRate); err == nil {
		rc.FrameRate = d
	}
	return rc
}

// Default returns the embedded default config.
func Default() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: no embedded default config found: %v\n", err)
		os.Exit(1)
	}

	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load embedded default config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// LoadConfig returns the defaults with the user's config file, if one
// exists, merged over them.
func LoadConfig() (*Config, error) {
	config := Default()
	configPath := getConfigFilePath()
	if configPath == "" {
		return config, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	if err := config.Load(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return config, nil
}

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("LOOM_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		xdgConfigDir := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "loom", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "loom", "config.toml")
	}
	return ""
}

// GetConfigDir returns the directory the config file is read from.
func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}
