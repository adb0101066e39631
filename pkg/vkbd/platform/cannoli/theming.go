package cannoli

import (
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/internal"
)

const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

func InitCannoliTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}

	return internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x9A9AA5),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0x1E1E24),
		KeyColor:             internal.HexToColor(0x32323C),
		KeyBorderColor:       internal.HexToColor(0x464650),
		FontPath:             fontPath,
	}
}
