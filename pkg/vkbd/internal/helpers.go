package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderMultilineText word-wraps text to maxWidth and draws it from startY. Centered text is
// centered vertically on startY as well.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth int32, x, startY int32, color sdl.Color, alignment ...constants.TextAlign) {
	textAlign := constants.TextAlignCenter
	if len(alignment) > 0 {
		textAlign = alignment[0]
	}

	lines := WrapText(text, font, maxWidth)
	if len(lines) == 0 {
		return
	}

	lineHeight := int32(font.Height())
	totalHeight := lineHeight * int32(len(lines))

	currentY := startY
	if textAlign == constants.TextAlignCenter {
		currentY = startY - totalHeight/2
	}

	for _, line := range lines {
		if line == "" {
			currentY += lineHeight + 5
			continue
		}

		surface, err := font.RenderUTF8Blended(line, color)
		if err != nil {
			continue
		}

		texture, err := renderer.CreateTextureFromSurface(surface)
		if err == nil {
			rect := &sdl.Rect{Y: currentY, W: surface.W, H: surface.H}

			switch textAlign {
			case constants.TextAlignCenter:
				rect.X = x - surface.W/2
			case constants.TextAlignRight:
				rect.X = x + maxWidth - surface.W
			default:
				rect.X = x
			}

			renderer.Copy(texture, nil, rect)
			texture.Destroy()
		}

		surface.Free()
		currentY += lineHeight + 5
	}
}

// WrapText splits text into lines no wider than maxWidth, breaking on spaces.
func WrapText(text string, font *ttf.Font, maxWidth int32) []string {
	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	var lines []string

	for _, paragraph := range strings.Split(normalized, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}

		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			testLine := currentLine + " " + word
			w, _, err := font.SizeUTF8(testLine)
			if err != nil {
				continue
			}
			if int32(w) <= maxWidth {
				currentLine = testLine
			} else {
				lines = append(lines, currentLine)
				currentLine = word
			}
		}
		lines = append(lines, currentLine)
	}

	return lines
}

// RenderCenteredText draws text centered inside rect through the texture cache.
func RenderCenteredText(renderer *sdl.Renderer, cache *TextureCache, font *ttf.Font, text string, color sdl.Color, rect *sdl.Rect) {
	if text == "" {
		return
	}

	texture, w, h := cache.Text(renderer, font, text, color)
	if texture == nil {
		return
	}

	renderer.Copy(texture, nil, &sdl.Rect{
		X: rect.X + (rect.W-w)/2,
		Y: rect.Y + (rect.H-h)/2,
		W: w,
		H: h,
	})
}

func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-radius, rect.Y+rect.H, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius, rect.Y+rect.H-radius, color)
	gfx.BoxColor(renderer, rect.X+rect.W-radius, rect.Y+radius, rect.X+rect.W, rect.Y+rect.H-radius, color)

	drawRoundedCorner(renderer, rect.X+radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	drawRoundedCorner(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	drawRoundedCorner(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

func drawRoundedCorner(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	// extra AA rings keep large radii from looking jagged
	if radius > 5 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// DrawRoundedBorder outlines rect with a rounded border of the given thickness.
func DrawRoundedBorder(renderer *sdl.Renderer, rect *sdl.Rect, radius, thickness int32, border, fill sdl.Color) {
	DrawRoundedRect(renderer, rect, radius, border)
	inner := &sdl.Rect{
		X: rect.X + thickness,
		Y: rect.Y + thickness,
		W: rect.W - 2*thickness,
		H: rect.H - 2*thickness,
	}
	DrawRoundedRect(renderer, inner, Max32(radius-thickness, 0), fill)
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

// ParseHexColor accepts RRGGBB with an optional "#" or "0x" prefix.
func ParseHexColor(hexStr string) (sdl.Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(hexStr, "#"), "0x")

	hex, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil || len(trimmed) != 6 {
		return sdl.Color{R: 255, A: 255}, fmt.Errorf("invalid color %q", hexStr)
	}

	return HexToColor(uint32(hex)), nil
}
