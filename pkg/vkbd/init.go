package vkbd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/internal"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/platform/cannoli"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/platform/nextui"
)

type Options struct {
	WindowTitle    string
	Width, Height  int32
	ShowBackground bool
	// AccentColorHex is RRGGBB, with or without '#'. Ignored on NextUI, which owns its palette.
	AccentColorHex   string
	IsNextUI         bool
	FontPath         string
	InputMappingPath string
	LogFilename      string
	LogLevel         string
}

// Init initializes SDL and the UI
// Must be called before Keyboard!
func Init(options Options) error {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if os.Getenv("INPUT_CAPTURE") != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(internal.ParseLevel(options.LogLevel))
	}

	if options.IsNextUI {
		internal.SetTheme(nextui.InitNextUITheme())
	} else {
		internal.SetTheme(cannoli.InitCannoliTheme(options.FontPath))
	}

	if options.AccentColorHex != "" && !options.IsNextUI {
		color, err := internal.ParseHexColor(options.AccentColorHex)
		if err != nil {
			return fmt.Errorf("accent color: %w", err)
		}
		theme := internal.GetTheme()
		theme.AccentColor = color
		internal.SetTheme(theme)
	}

	if options.InputMappingPath != "" {
		internal.SetInputMappingPath(options.InputMappingPath)
	}

	return internal.Init(internal.InitOptions{
		Title:          options.WindowTitle,
		Width:          options.Width,
		Height:         options.Height,
		ShowBackground: options.ShowBackground,
		FontPath:       options.FontPath,
	})
}

// Close Tidies up SDL and the UI
// Must be called after all UI functions!
func Close() {
	internal.SDLCleanup()
	internal.CloseLogger()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

// SetLogToStdout controls whether logs are also copied to stdout.
func SetLogToStdout(enabled bool) {
	internal.SetLogToStdout(enabled)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}

// SaveDefaultInputMapping writes the built-in mapping to path as a starting point for edits.
func SaveDefaultInputMapping(path string) error {
	return internal.DefaultInputMapping().SaveToJSON(path)
}

func GetWindow() *internal.Window {
	return internal.GetWindow()
}

func HideWindow() {
	internal.GetWindow().Window.Hide()
}

func ShowWindow() {
	internal.GetWindow().Window.Show()
}
