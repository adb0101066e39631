package nextui

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	nextValPath       = "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"
	backgroundPath    = "/mnt/SDCARD/bg.png"
	NextValPathEnvVar = "NEXTVAL_PATH"
)

// NextVal is the theme dump printed by nextval.elf.
type NextVal struct {
	Font     int    `json:"font"`
	FontPath string `json:"fontpath"`
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
}

var defaultTheme = internal.Theme{
	HighlightColor:       internal.HexToColor(0xFFFFFF),
	AccentColor:          internal.HexToColor(0x9B2257),
	ButtonLabelColor:     internal.HexToColor(0x1E2329),
	HintColor:            internal.HexToColor(0xFFFFFF),
	TextColor:            internal.HexToColor(0xFFFFFF),
	HighlightedTextColor: internal.HexToColor(0x000000),
	BackgroundColor:      internal.HexToColor(0x000000),
	BackgroundImagePath:  backgroundPath,
}

// InitNextUITheme reads the system colors, falling back to the stock palette.
func InitNextUITheme() internal.Theme {
	var nv *NextVal
	var err error

	if constants.IsDevMode() {
		nv, err = InitStaticNextVal(os.Getenv(NextValPathEnvVar))
	} else {
		nv, err = loadNextVal()
	}

	if err != nil {
		internal.GetInternalLogger().Debug("Using default NextUI theme", "error", err)
		return defaultTheme
	}

	theme := internal.Theme{
		HighlightColor:       parseHexColor(nv.Color1),
		AccentColor:          parseHexColor(nv.Color2),
		ButtonLabelColor:     parseHexColor(nv.Color3),
		TextColor:            parseHexColor(nv.Color4),
		HighlightedTextColor: parseHexColor(nv.Color5),
		HintColor:            parseHexColor(nv.Color6),
		BackgroundColor:      parseHexColor(nv.BGColor),
		FontPath:             nv.FontPath,
		BackgroundImagePath:  backgroundPath,
	}

	if constants.IsDevMode() {
		theme.BackgroundImagePath = os.Getenv(constants.BackgroundPathEnvVar)
	}

	return theme
}

func InitStaticNextVal(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return parseNextVal(data)
}

func loadNextVal() (*NextVal, error) {
	output, err := exec.Command(nextValPath).Output()
	if err != nil {
		internal.GetInternalLogger().Error("Error executing command!", "error", err)
		return nil, err
	}

	return parseNextVal([]byte(strings.TrimSpace(string(output))))
}

func parseNextVal(data []byte) (*NextVal, error) {
	var nextval NextVal
	if err := json.Unmarshal(data, &nextval); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return &nextval, nil
}

func parseHexColor(hexStr string) sdl.Color {
	color, err := internal.ParseHexColor(hexStr)
	if err != nil {
		internal.GetInternalLogger().Debug("Bad NextUI color", "value", hexStr, "error", err)
	}
	return color
}
