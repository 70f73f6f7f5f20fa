// Package config loads folio settings from a YAML file, FOLIO_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/folio/internal/model"
	"github.com/tinytelemetry/folio/internal/theme"
	"github.com/tinytelemetry/folio/internal/typewriter"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "FOLIO"

// Config is the runtime configuration shared by both binaries.
type Config struct {
	ProfilePath        string        `mapstructure:"profile-path"`
	ThemePath          string        `mapstructure:"theme-path"`
	Dark               bool          `mapstructure:"dark"`
	TypingDelay        time.Duration `mapstructure:"typing-delay"`
	StartDelay         time.Duration `mapstructure:"start-delay"`
	HTTPAddr           string        `mapstructure:"http-addr"`
	DownloadDir        string        `mapstructure:"download-dir"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	ConfigPath         string        `mapstructure:"-"` // not from config file
}

// Load reads configPath, or $HOME/.config/folio/config.yml when empty. A
// missing file is not an error. A .env file in the working directory is
// applied first without overriding variables already set.
func Load(configPath string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("profile-path", "")
	v.SetDefault("theme-path", "")
	v.SetDefault("dark", true)
	v.SetDefault("typing-delay", model.DefaultTypingDelay)
	v.SetDefault("start-delay", model.DefaultStartDelay)
	v.SetDefault("http-addr", model.DefaultHTTPAddr)
	v.SetDefault("download-dir", filepath.Join(home, "Downloads"))
	v.SetDefault("reverse-scroll-wheel", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "folio", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		cfg.ConfigPath = ""
	}

	if cfg.TypingDelay < 0 {
		return cfg, fmt.Errorf("invalid typing-delay: %s", cfg.TypingDelay)
	}
	if cfg.StartDelay < 0 {
		return cfg, fmt.Errorf("invalid start-delay: %s", cfg.StartDelay)
	}

	cfg.ProfilePath = expandHome(cfg.ProfilePath, home)
	cfg.ThemePath = expandHome(cfg.ThemePath, home)
	cfg.DownloadDir = expandHome(cfg.DownloadDir, home)

	return cfg, nil
}

// Typing returns the typewriter timing.
func (c Config) Typing() typewriter.Options {
	return typewriter.Options{StartDelay: c.StartDelay, Delay: c.TypingDelay}
}

// Theme returns the initial theme flag.
func (c Config) Theme() model.ThemeFlag {
	return model.ThemeFlag{IsDark: c.Dark}
}

// Content loads the profile and palettes the config points at.
func (c Config) Content() (model.Profile, theme.Set, error) {
	profile, err := model.LoadProfile(c.ProfilePath)
	if err != nil {
		return profile, theme.DefaultSet(), err
	}
	themes, err := theme.LoadSet(c.ThemePath)
	if err != nil {
		return profile, themes, err
	}
	return profile, themes, nil
}

func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
