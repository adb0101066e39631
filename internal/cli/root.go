// Package cli holds the cobra commands of the vkbd binary.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/config"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/i18n"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/prefs"
)

// App is the state shared by every subcommand.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Store  prefs.Store

	// StoreErr is why the configured store could not be opened. Store is then in memory.
	StoreErr error
}

var (
	app        *App
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "vkbd",
		Short: "A bilingual English/Russian virtual keyboard",
		Long: `vkbd - an on-screen keyboard with English and Russian layouts.

Type by clicking keys, with a gamepad, or with a physical keyboard. Ctrl+Alt switches
the language, which is remembered between runs. Caps Lock and Shift behave like on a
hardware keyboard.

Use 'vkbd sdl' for the graphical keyboard or 'vkbd tui' for the terminal one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = newApp(cmd.Context(), cmd.Name() == sdlCmd.Name())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/vkbd/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// Execute runs the root command. The app is closed here because cobra skips post-run hooks
// when a command fails.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if app != nil {
		if closeErr := app.Close(); closeErr != nil {
			app.Logger.Error("Failed to close preferences", "error", closeErr)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp loads the config and opens the log and the preference store. Only the SDL window
// keeps the stdout copy of the log; the other commands own the terminal.
func newApp(ctx context.Context, logToStdout bool) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	vkbd.SetLogFilename(cfg.Log.File)
	vkbd.SetLogToStdout(logToStdout)
	vkbd.SetRawLogLevel(cfg.Log.Level)
	logger := vkbd.GetLogger()

	if cfg.File != "" {
		logger.Debug("Loaded config", "file", cfg.File)
	}

	// the keyboard still starts, in English, when the store is broken
	store, storeErr := prefs.OpenOrMemory(ctx, prefs.Backend(cfg.Prefs.Backend), cfg.Prefs.Path, logger)

	if err := i18n.Init(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load translations: %w", err)
	}

	return &App{Config: cfg, Logger: logger, Store: store, StoreErr: storeErr}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *App {
	return app
}
