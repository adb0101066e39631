package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

type InitOptions struct {
	Title          string
	Width, Height  int32
	ShowBackground bool
	FontPath       string
	FontSizes      FontSizes
}

// Init brings up SDL, the window, fonts and the input processor.
func Init(opts InitOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init SDL: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("init TTF: %w", err)
	}

	win, err := initWindow(opts.Title, opts.Width, opts.Height, opts.ShowBackground)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = win

	sizes := opts.FontSizes
	if sizes == (FontSizes{}) {
		sizes = DefaultFontSizes
	}
	if err := initFonts(sizes, opts.FontPath); err != nil {
		window.closeWindow()
		window = nil
		ttf.Quit()
		sdl.Quit()
		return err
	}

	InitInputProcessor()

	return nil
}

func SDLCleanup() {
	CloseAllControllers()
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	sdl.Quit()
}
