// Package config loads keyboard settings from a TOML file and VKBD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "VKBD"

// Config is the complete keyboard configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Prefs    PrefsConfig    `mapstructure:"prefs"`
	Keyboard KeyboardConfig `mapstructure:"keyboard"`
	Input    InputConfig    `mapstructure:"input"`
	Display  DisplayConfig  `mapstructure:"display"`

	// File is the config file that was read, empty if none was found.
	File string `mapstructure:"-"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// PrefsConfig selects where the keyboard language is persisted.
type PrefsConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type KeyboardConfig struct {
	HighlightMS int `mapstructure:"highlight_ms"`
	TabWidth    int `mapstructure:"tab_width"`
}

// Highlight is how long a key stays lit after it is activated.
func (k KeyboardConfig) Highlight() time.Duration {
	return time.Duration(k.HighlightMS) * time.Millisecond
}

// InputConfig names the physical input sources. Empty values disable them.
type InputConfig struct {
	Device      string `mapstructure:"device"`
	MappingPath string `mapstructure:"mapping_path"`
}

type DisplayConfig struct {
	Theme       string `mapstructure:"theme"`
	FontPath    string `mapstructure:"font_path"`
	AccentColor string `mapstructure:"accent_color"`
	Width       int32  `mapstructure:"width"`
	Height      int32  `mapstructure:"height"`
	Title       string `mapstructure:"title"`
}

// Load reads path, or config.toml from the config directory or the working directory when
// path is empty. A missing file is not an error; defaults and environment still apply.
func Load(path string) (*Config, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	normalize(cfg, configDir)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	configDir, err := ConfigDir()
	if err != nil {
		configDir = "."
	}
	v := viper.New()
	setDefaults(v, configDir)

	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "vkbd.log")

	v.SetDefault("prefs.backend", "toml")
	v.SetDefault("prefs.path", filepath.Join(configDir, "prefs.toml"))

	v.SetDefault("keyboard.highlight_ms", 100)
	v.SetDefault("keyboard.tab_width", 4)

	v.SetDefault("input.device", "")
	v.SetDefault("input.mapping_path", "")

	v.SetDefault("display.theme", "cannoli")
	v.SetDefault("display.font_path", "")
	v.SetDefault("display.accent_color", "")
	v.SetDefault("display.width", 1024)
	v.SetDefault("display.height", 768)
	v.SetDefault("display.title", "vkbd")
}

func normalize(cfg *Config, configDir string) {
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Prefs.Backend = strings.ToLower(strings.TrimSpace(cfg.Prefs.Backend))
	cfg.Display.Theme = strings.ToLower(strings.TrimSpace(cfg.Display.Theme))

	// A sqlite backend pointed at the default TOML file gets its own database file.
	if cfg.Prefs.Backend == "sqlite" && cfg.Prefs.Path == filepath.Join(configDir, "prefs.toml") {
		cfg.Prefs.Path = filepath.Join(configDir, "prefs.db")
	}
}
