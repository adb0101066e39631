package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFiles embed.FS

var keyIcons = map[layout.KeyID]string{
	layout.Backspace:  "icons/backspace.svg",
	layout.Enter:      "icons/enter.svg",
	layout.ShiftLeft:  "icons/shift.svg",
	layout.ShiftRight: "icons/shift.svg",
	layout.CapsLock:   "icons/capslock.svg",
	layout.Tab:        "icons/tab.svg",
}

// KeyIcon returns the icon texture for id drawn in color, or nil when the key is labelled
// with its glyph.
func KeyIcon(renderer *sdl.Renderer, cache *TextureCache, id layout.KeyID, size int32, color sdl.Color) *sdl.Texture {
	name, ok := keyIcons[id]
	if !ok {
		return nil
	}

	key := fmt.Sprintf("icon_%s_%d_%d_%d_%d", name, size, color.R, color.G, color.B)
	if texture := cache.Get(key); texture != nil {
		return texture
	}

	data, err := iconFiles.ReadFile(name)
	if err != nil {
		GetInternalLogger().Error("Missing key icon", "icon", name, "error", err)
		return nil
	}

	hex := fmt.Sprintf("#%02X%02X%02X", color.R, color.G, color.B)
	data = bytes.ReplaceAll(data, []byte("currentColor"), []byte(hex))

	texture, err := loadSVGTexture(renderer, data, size, size)
	if err != nil {
		GetInternalLogger().Error("Failed to rasterize key icon", "icon", name, "error", err)
		return nil
	}

	cache.Set(key, texture)
	return texture
}

// loadSVGTexture rasterizes an SVG and creates an SDL texture
func loadSVGTexture(renderer *sdl.Renderer, svgData []byte, width, height int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return loadRasterTexture(renderer, buf.Bytes())
}

func loadRasterTexture(renderer *sdl.Renderer, imageData []byte) (*sdl.Texture, error) {
	img.Init(img.INIT_PNG)
	rw, err := sdl.RWFromMem(imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}
