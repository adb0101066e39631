package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
}

var window *Window

func initWindow(title string, width, height int32, displayBackground bool) (*Window, error) {
	if !constants.IsDevMode() {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to Get display mode!", "error", err)
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	return initWindowWithSize(title, width, height, displayBackground)
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetInternalLogger().Warn("Invalid "+name+"; using configured size", "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool) (*Window, error) {
	x, y := int32(0), int32(0)
	windowFlags := uint32(sdl.WINDOW_SHOWN)

	if constants.IsDevMode() {
		x, y = int32(50), int32(50)
		width = envSize("WINDOW_WIDTH", width)
		height = envSize("WINDOW_HEIGHT", height)
		windowFlags |= sdl.WINDOW_BORDERLESS
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		sdlWindow.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)

	win := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
	}

	win.loadBackground()

	return win, nil
}

func (window *Window) loadBackground() {
	if !window.DisplayBackground {
		return
	}

	img.Init(img.INIT_PNG)

	theme := GetTheme()
	if theme.BackgroundImagePath == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, theme.BackgroundImagePath)
	if err != nil {
		GetInternalLogger().Debug("No background image", "path", theme.BackgroundImagePath, "error", err)
		window.Background = nil
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()

	img.Quit()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Renderer.GetLogicalSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Renderer.GetLogicalSize()
	return h
}

func (window *Window) RenderBackground() {
	theme := GetTheme()
	window.Renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}
