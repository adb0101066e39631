package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

const FallbackFontEnvVar = "FALLBACK_FONT"

var ErrNoFont = errors.New("no usable font")

type FontSizes struct {
	Large  int `json:"large" toml:"large"`
	Medium int `json:"medium" toml:"medium"`
	Small  int `json:"small" toml:"small"`
	Tiny   int `json:"tiny" toml:"tiny"`
}

var DefaultFontSizes = FontSizes{
	Large:  50,
	Medium: 40,
	Small:  30,
	Tiny:   22,
}

var Fonts fontsManager

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	TinyFont   *ttf.Font
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Apply damping for larger screens to reduce scaling growth
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75 // 75% of the growth above 1x
	}

	return int(float32(baseSize) * scaleFactor)
}

// GetScaleFactor returns the scale factor based on current screen width
func GetScaleFactor() float32 {
	const referenceWidth int32 = 1024
	screenWidth := GetWindow().GetWidth()

	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return scaleFactor
}

// fontCandidates lists the paths tried in order: the configured font, FALLBACK_FONT, then the
// theme's font. The font needs Cyrillic coverage for the Russian maps.
func fontCandidates(configured string) []string {
	var paths []string
	for _, p := range []string{configured, os.Getenv(FallbackFontEnvVar), GetTheme().FontPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func initFonts(sizes FontSizes, configured string) error {
	screenWidth := GetWindow().GetWidth()

	var path string
	for _, candidate := range fontCandidates(configured) {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
		GetInternalLogger().Debug("Font not found, trying next", "path", candidate)
	}
	if path == "" {
		return fmt.Errorf("%w: set display.font_path or %s", ErrNoFont, FallbackFontEnvVar)
	}

	calcSize := func(base int) int {
		return CalculateFontSizeForResolution(base, screenWidth)
	}

	var err error
	open := func(base int) *ttf.Font {
		if err != nil {
			return nil
		}
		var font *ttf.Font
		font, err = ttf.OpenFont(path, calcSize(base))
		return font
	}

	Fonts = fontsManager{
		LargeFont:  open(sizes.Large),
		MediumFont: open(sizes.Medium),
		SmallFont:  open(sizes.Small),
		TinyFont:   open(sizes.Tiny),
	}
	if err != nil {
		closeFonts()
		return fmt.Errorf("open font %s: %w", path, err)
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path)
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont, Fonts.TinyFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = fontsManager{}
}
