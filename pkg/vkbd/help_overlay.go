package vkbd

import (
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/i18n"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// helpOverlay is a scrollable full-screen list of help lines. Lines are looked up when drawn,
// so a language switch while the overlay is open re-translates it.
type helpOverlay struct {
	titleKey    string
	lineKeys    []string
	exitKey     string
	scrollLine  int
	ShowingHelp bool
}

func newHelpOverlay(titleKey string, lineKeys []string, exitKey string) *helpOverlay {
	return &helpOverlay{
		titleKey: titleKey,
		lineKeys: lineKeys,
		exitKey:  exitKey,
	}
}

func (h *helpOverlay) toggle() {
	h.ShowingHelp = !h.ShowingHelp
	h.scrollLine = 0
}

func (h *helpOverlay) scroll(direction int) {
	h.scrollLine += direction
	if h.scrollLine < 0 {
		h.scrollLine = 0
	}
	if h.scrollLine > len(h.lineKeys)-1 {
		h.scrollLine = len(h.lineKeys) - 1
	}
}

func (h *helpOverlay) render(renderer *sdl.Renderer) {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	width, height := window.GetWidth(), window.GetHeight()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 230)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: height})

	margin := width / 12
	y := height / 10

	titleFont := internal.Fonts.LargeFont
	internal.RenderMultilineText(renderer, i18n.GetString(h.titleKey), titleFont, width-2*margin, margin, y, theme.TextColor, constants.TextAlignLeft)
	y += int32(titleFont.Height()) * 2

	lineFont := internal.Fonts.SmallFont
	lineHeight := int32(lineFont.Height()) + 12
	for _, key := range h.lineKeys[h.scrollLine:] {
		if y+lineHeight > height-height/8 {
			break
		}
		internal.RenderMultilineText(renderer, "• "+i18n.GetString(key), lineFont, width-2*margin, margin, y, theme.TextColor, constants.TextAlignLeft)
		y += lineHeight
	}

	internal.RenderMultilineText(renderer, i18n.GetString(h.exitKey), internal.Fonts.TinyFont, width, width/2, height-height/12, theme.HintColor)
}
