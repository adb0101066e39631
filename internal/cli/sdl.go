package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/hwinput"
)

var sdlDevice string

var sdlCmd = &cobra.Command{
	Use:   "sdl [initial text]",
	Short: "Show the keyboard in an SDL window",
	Long: `Open the graphical keyboard and print the confirmed text.

Controls: click or touch keys, or navigate with a gamepad (A types the selected key,
B is backspace, X is space, Select is shift, L2 switches language, R2 is caps lock,
L1/R1 move the cursor, Start confirms, Y cancels). A physical keyboard types directly.

Examples:
  vkbd sdl
  vkbd sdl "initial text"
  vkbd sdl --device /dev/input/event3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSDL,
}

func init() {
	sdlCmd.Flags().StringVar(&sdlDevice, "device", "", "evdev keyboard to read alongside the window (overrides input.device)")
	rootCmd.AddCommand(sdlCmd)
}

func runSDL(cmd *cobra.Command, args []string) error {
	app := GetApp()
	cfg := app.Config

	if err := vkbd.Init(vkbd.Options{
		WindowTitle:      cfg.Display.Title,
		Width:            cfg.Display.Width,
		Height:           cfg.Display.Height,
		ShowBackground:   cfg.Display.Theme == "nextui",
		AccentColorHex:   cfg.Display.AccentColor,
		IsNextUI:         cfg.Display.Theme == "nextui",
		FontPath:         cfg.Display.FontPath,
		InputMappingPath: cfg.Input.MappingPath,
		LogLevel:         cfg.Log.Level,
	}); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer vkbd.Close()

	device, err := openDevice(sdlDevice, cfg.Input.Device)
	if err != nil {
		return err
	}
	res, err := vkbd.Keyboard(cmd.Context(), strings.Join(args, " "), vkbd.KeyboardOptions{
		Store:     app.Store,
		Highlight: cfg.Keyboard.Highlight(),
		TabWidth:  cfg.Keyboard.TabWidth,
		Device:    device,
		Logger:    app.Logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return nil
}

// openDevice opens the flag's evdev path, else the configured one. No path means no device.
func openDevice(flag, configured string) (*hwinput.Source, error) {
	path := flag
	if path == "" {
		path = configured
	}

	src, err := hwinput.Open(path, GetApp().Logger)
	if errors.Is(err, hwinput.ErrNoDevice) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open input device: %w", err)
	}
	return src, nil
}
