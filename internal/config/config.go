package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ThemeConfig holds color theme configuration. Empty fields fall back to
// the preset's values.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config holds the application configuration.
type Config struct {
	Storage         string      `mapstructure:"storage"`
	DataDir         string      `mapstructure:"data_dir"`
	MaxWidth        int         `mapstructure:"max_width"`
	WeekStart       string      `mapstructure:"week_start"`
	SystemClipboard bool        `mapstructure:"system_clipboard"`
	Theme           ThemeConfig `mapstructure:"theme"`
	Log             LogConfig   `mapstructure:"log"`
}

// DefaultDataDir returns the default data directory (~/.caldiary/).
func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".", ".caldiary")
	}
	return filepath.Join(home, ".caldiary")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "markdown")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("max_width", 0)
	v.SetDefault("week_start", "monday")
	v.SetDefault("system_clipboard", false)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "caldiary"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: CALDIARY_STORAGE, CALDIARY_DATA_DIR, CALDIARY_LOG_LEVEL, etc.
	v.SetEnvPrefix("CALDIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	dataDir, err := homedir.Expand(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("expanding data_dir: %w", err)
	}
	cfg.DataDir = dataDir

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.DataDir, "caldiary.log")
	} else if cfg.Log.File, err = homedir.Expand(cfg.Log.File); err != nil {
		return nil, fmt.Errorf("expanding log.file: %w", err)
	}

	if _, err := cfg.FirstWeekday(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FirstWeekday returns the configured first column of the month grid.
func (c *Config) FirstWeekday() (time.Weekday, error) {
	switch strings.ToLower(c.WeekStart) {
	case "", "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("invalid week_start %q (use monday or sunday)", c.WeekStart)
	}
}
