package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

func validate(cfg *Config) error {
	var problems []string

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level must be one of: debug, info, warn, error (got: %s)", cfg.Log.Level))
	}

	switch cfg.Prefs.Backend {
	case "toml", "sqlite":
		if cfg.Prefs.Path == "" {
			problems = append(problems, "prefs.path cannot be empty")
		}
	case "memory":
	default:
		problems = append(problems, fmt.Sprintf("prefs.backend must be one of: toml, sqlite, memory (got: %s)", cfg.Prefs.Backend))
	}

	if cfg.Keyboard.HighlightMS <= 0 {
		problems = append(problems, "keyboard.highlight_ms must be positive")
	}
	if cfg.Keyboard.TabWidth <= 0 {
		problems = append(problems, "keyboard.tab_width must be positive")
	}

	switch cfg.Display.Theme {
	case "cannoli", "nextui":
	default:
		problems = append(problems, fmt.Sprintf("display.theme must be one of: cannoli, nextui (got: %s)", cfg.Display.Theme))
	}
	if cfg.Display.AccentColor != "" && !hexColor.MatchString(cfg.Display.AccentColor) {
		problems = append(problems, fmt.Sprintf("display.accent_color must be a #RRGGBB hex color (got: %s)", cfg.Display.AccentColor))
	}
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		problems = append(problems, "display.width and display.height must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
