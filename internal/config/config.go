// Package config handles the configuration directory and display settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskzord"

	// SettingsFile is the optional settings filename inside the config dir.
	SettingsFile = "config.yml"

	// DebugLogFile receives screen logs when --debug is set.
	DebugLogFile = "debug.log"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Settings are display preferences. Tasks are never stored here.
	Settings Settings
}

// Settings are the display preferences read from config.yml and the
// environment. Environment variables win over the file. Defaults come from
// DefaultSettings, so an explicit zero in the file is kept and validated.
type Settings struct {
	DarkMode   bool `yaml:"dark_mode" env:"TASKZORD_DARK_MODE"`
	Width      int  `yaml:"width" env:"TASKZORD_WIDTH"`
	ListHeight int  `yaml:"list_height" env:"TASKZORD_LIST_HEIGHT"`
	AltScreen  bool `yaml:"alt_screen" env:"TASKZORD_ALT_SCREEN"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskzord or $HOME/.config/taskzord.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	settings, err := LoadSettings(cfg.SettingsPath())
	if err != nil {
		return nil, err
	}
	cfg.Settings = settings
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{Width: 64, ListHeight: 10, AltScreen: true}
}

// LoadSettings reads path if it exists, otherwise only the environment.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &s); err != nil {
			return Settings{}, fmt.Errorf("read %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("stat %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&s); err != nil {
		return Settings{}, fmt.Errorf("read env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects sizes the screen cannot lay out.
func (s Settings) Validate() error {
	if s.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", s.Width)
	}
	if s.ListHeight < 1 {
		return fmt.Errorf("list_height must be positive, got %d", s.ListHeight)
	}
	return nil
}

// SettingsPath returns the path to the optional settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// DebugLogPath returns the path the screen logs to under --debug.
func (c *Config) DebugLogPath() string {
	return filepath.Join(c.Dir, DebugLogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
