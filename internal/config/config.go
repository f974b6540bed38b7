package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/soundearth/internal/location"
)

const appName = "soundearth"

type Config struct {
	AudioDir      string `koanf:"audio_dir"` // folder holding the location clips
	Icons         string `koanf:"icons"`     // "nerd", "unicode", or "none"
	LogFile       string `koanf:"log_file"`  // empty means the XDG state dir
	LogLevel      string `koanf:"log_level"` // "debug", "info", "warn", "error"
	Notifications bool   `koanf:"notifications"`
	MPRIS         bool   `koanf:"mpris"`

	Playback PlaybackConfig `koanf:"playback"`
	Map      MapConfig      `koanf:"map"`

	// Replaces the built-in locations when non-empty.
	Locations []location.Spec `koanf:"locations"`
}

// PlaybackConfig holds audio and auto-advance settings.
type PlaybackConfig struct {
	AdvanceDelay      time.Duration `koanf:"advance_delay"`      // pause before the next clip (default: 2s)
	RequireActivation bool          `koanf:"require_activation"` // block playback until the first key or click
	Volume            float64       `koanf:"volume"`             // 0.0-1.0 (default: 1.0)
}

// MapConfig holds map view settings.
type MapConfig struct {
	Tiles   string  `koanf:"tiles"`   // basemap file; empty means built-in
	Padding float64 `koanf:"padding"` // share of bounds added around markers (default: 0.1)
}

func defaults() *Config {
	return &Config{
		AudioDir:      "audio",
		Icons:         "unicode",
		LogLevel:      "info",
		Notifications: true,
		MPRIS:         true,
		Playback: PlaybackConfig{
			AdvanceDelay: 2 * time.Second,
			Volume:       1.0,
		},
		Map: MapConfig{
			Padding: 0.1,
		},
	}
}

// Load reads the user and local config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.AudioDir = expandPath(cfg.AudioDir)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Map.Tiles = expandPath(cfg.Map.Tiles)

	if cfg.Playback.AdvanceDelay <= 0 {
		cfg.Playback.AdvanceDelay = 2 * time.Second
	}
	cfg.Playback.Volume = min(max(cfg.Playback.Volume, 0), 1)
	if cfg.Map.Padding < 0 || cfg.Map.Padding > 1 {
		cfg.Map.Padding = 0.1
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/soundearth/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Registry builds the location registry, falling back to the built-in
// locations when none are configured.
func (c *Config) Registry() (*location.Registry, error) {
	if len(c.Locations) == 0 {
		return location.Default(), nil
	}
	return location.NewRegistry(c.Locations)
}

// LogPath returns the log file path, creating its directory when it
// defaults to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// SlogLevel parses LogLevel, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
