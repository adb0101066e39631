package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/i18n"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/tui"
)

var tuiDevice string

var tuiCmd = &cobra.Command{
	Use:   "tui [initial text]",
	Short: "Show the keyboard in the terminal",
	Long: `Draw the keyboard in the terminal and print the confirmed text.

Terminals cannot report Ctrl+Alt or Caps Lock on their own: ctrl+t switches the
language and ctrl+k toggles caps lock. With --device, a physical keyboard read
through evdev drives the same keyboard with real modifier keys.

Examples:
  vkbd tui
  vkbd tui --device /dev/input/event3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiDevice, "device", "", "evdev keyboard to read (overrides input.device)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	app := GetApp()
	cfg := app.Config
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var program atomic.Pointer[tea.Program]

	ctrl, err := keyboard.New(ctx, keyboard.Options{
		Store:     app.Store,
		Logger:    app.Logger,
		Text:      strings.Join(args, " "),
		Highlight: cfg.Keyboard.Highlight(),
		TabWidth:  cfg.Keyboard.TabWidth,
		OnRedraw: func() {
			if p := program.Load(); p != nil {
				p.Send(tui.Redraw())
			}
		},
		OnLanguage: func(lang layout.Language) {
			if err := i18n.SetWithCode(string(lang)); err != nil {
				app.Logger.Error("Failed to switch UI language", "language", lang, "error", err)
			}
		},
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := i18n.SetWithCode(string(ctrl.Modifiers().Language)); err != nil {
		app.Logger.Warn("Failed to set UI language", "error", err)
	}

	device, err := openDevice(tuiDevice, cfg.Input.Device)
	if err != nil {
		return err
	}
	if device != nil {
		// Run closes the device once ctx is cancelled
		if on, ok := device.CapsLockOn(); ok {
			ctrl.SyncCapsLock(on)
		}
		go func() {
			if err := device.Run(ctx, ctrl); err != nil && !errors.Is(err, context.Canceled) {
				app.Logger.Error("Input device stopped", "error", err)
			}
		}()
	}

	model := tui.New(ctx, ctrl, tui.Options{
		Theme:     tui.NewTheme(cfg.Display.AccentColor),
		Logger:    app.Logger,
		Highlight: cfg.Keyboard.Highlight(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	program.Store(p)

	final, err := p.Run()
	program.Store(nil)
	if err != nil {
		return fmt.Errorf("run terminal keyboard: %w", err)
	}

	res, err := final.(tui.Model).Result()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return nil
}
