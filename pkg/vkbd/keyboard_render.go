package vkbd

import (
	"unicode/utf8"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/editor"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/i18n"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/internal"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const textPadding = int32(10)

func (kb *virtualKeyboard) render(renderer *sdl.Renderer) {
	window := internal.GetWindow()
	window.RenderBackground()

	view := kb.ctrl.View()

	kb.renderTextInput(renderer, view.Text)
	kb.renderKeys(renderer, view)
	kb.renderFooter(renderer, view)

	if kb.ShowingHelp && kb.helpOverlay != nil {
		kb.helpOverlay.render(renderer)
	}

	renderer.Present()
}

// caretLine returns the line of s holding the caret, and where that line starts in s.
func caretLine(s editor.State) ([]rune, int) {
	runes := []rune(s.Text)
	start := 0
	for i := s.Start - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			start = i + 1
			break
		}
	}
	end := len(runes)
	for i := s.Start; i < len(runes); i++ {
		if runes[i] == '\n' {
			end = i
			break
		}
	}
	return runes[start:end], start
}

func (kb *virtualKeyboard) renderTextInput(renderer *sdl.Renderer, s editor.State) {
	theme := internal.GetTheme()
	rect := kb.geometry.textInput
	font := internal.Fonts.MediumFont

	internal.DrawRoundedBorder(renderer, &rect, 10, 2, theme.KeyBorderColor, theme.KeyColor)

	if s.Text == "" {
		kb.renderPlaceholder(renderer, font, rect)
		return
	}

	line, lineStart := caretLine(s)
	caretCol := s.Start - lineStart

	cursorX := textWidth(font, string(line[:caretCol]))
	lineWidth := textWidth(font, string(line))
	visibleWidth := rect.W - textPadding*2
	offsetX := calculateScrollOffset(cursorX, visibleWidth, lineWidth, textPadding)

	textY := rect.Y + (rect.H-int32(font.Height()))/2

	if !s.Collapsed() {
		selStart := max(s.Start, lineStart) - lineStart
		selEnd := min(s.End, lineStart+len(line)) - lineStart
		if selEnd > selStart {
			x0 := textWidth(font, string(line[:selStart]))
			x1 := textWidth(font, string(line[:selEnd]))
			renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
			renderer.FillRect(&sdl.Rect{
				X: rect.X + textPadding + x0 - offsetX,
				Y: textY,
				W: x1 - x0,
				H: int32(font.Height()),
			})
		}
	}

	if len(line) > 0 {
		surface, err := font.RenderUTF8Blended(string(line), theme.TextColor)
		if err == nil {
			texture, err := renderer.CreateTextureFromSurface(surface)
			if err == nil {
				srcRect := &sdl.Rect{X: offsetX, Y: 0, W: internal.Min32(visibleWidth, surface.W), H: surface.H}
				dstRect := &sdl.Rect{X: rect.X + textPadding, Y: textY, W: srcRect.W, H: surface.H}
				renderer.Copy(texture, srcRect, dstRect)
				texture.Destroy()
			}
			surface.Free()
		}
	}

	if kb.CursorVisible && s.Collapsed() {
		cursorRect := sdl.Rect{
			X: rect.X + textPadding + cursorX - offsetX,
			Y: textY,
			W: 2,
			H: int32(font.Height()),
		}
		renderer.SetDrawColor(theme.TextColor.R, theme.TextColor.G, theme.TextColor.B, 255)
		renderer.FillRect(&cursorRect)
	}
}

func (kb *virtualKeyboard) renderPlaceholder(renderer *sdl.Renderer, font *ttf.Font, rect sdl.Rect) {
	theme := internal.GetTheme()
	textY := rect.Y + (rect.H-int32(font.Height()))/2

	texture, w, h := kb.textureCache.Text(renderer, font, i18n.GetString(i18n.Placeholder), theme.HintColor)
	if texture != nil {
		renderer.Copy(texture, nil, &sdl.Rect{
			X: rect.X + textPadding + 4,
			Y: textY,
			W: internal.Min32(w, rect.W-textPadding*2),
			H: h,
		})
	}

	if kb.CursorVisible {
		renderer.SetDrawColor(theme.TextColor.R, theme.TextColor.G, theme.TextColor.B, 255)
		renderer.FillRect(&sdl.Rect{X: rect.X + textPadding, Y: textY, W: 2, H: int32(font.Height())})
	}
}

func textWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

func calculateScrollOffset(cursorX, visibleWidth, textWidth, padding int32) int32 {
	offsetX := int32(0)
	if cursorX > visibleWidth {
		offsetX = cursorX - visibleWidth + padding
	}

	maxOffset := max(textWidth-visibleWidth, 0)
	return min(offsetX, maxOffset)
}

// placeCursorAt moves the caret to the character boundary nearest x on the visible line.
func (kb *virtualKeyboard) placeCursorAt(x int32) {
	s := kb.ctrl.State()
	font := internal.Fonts.MediumFont
	line, lineStart := caretLine(s)

	rect := kb.geometry.textInput
	visibleWidth := rect.W - textPadding*2
	offsetX := calculateScrollOffset(textWidth(font, string(line[:s.Start-lineStart])), visibleWidth, textWidth(font, string(line)), textPadding)
	target := x - rect.X - textPadding + offsetX

	best, bestDistance := 0, int32(-1)
	for col := 0; col <= len(line); col++ {
		distance := textWidth(font, string(line[:col])) - target
		if distance < 0 {
			distance = -distance
		}
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = col, distance
		}
	}

	kb.ctrl.SetSelection(lineStart+best, lineStart+best)
	kb.resetCursorBlink()
}

func (kb *virtualKeyboard) renderKeys(renderer *sdl.Renderer, view keyboard.View) {
	selected := kb.selectedKey()
	for _, row := range view.Rows {
		for _, key := range row {
			rect, ok := kb.geometry.rect(key.ID)
			if !ok {
				continue
			}
			kb.renderSingleKey(renderer, key, rect, key.ID == selected && !kb.ShowingHelp)
		}
	}
}

func (kb *virtualKeyboard) renderSingleKey(renderer *sdl.Renderer, key keyboard.KeyView, rect sdl.Rect, isSelected bool) {
	theme := internal.GetTheme()

	bgColor := theme.KeyColor
	borderColor := theme.KeyBorderColor
	textColor := theme.TextColor
	if !key.Printable {
		bgColor = theme.KeyBorderColor
	}

	switch {
	case key.Active:
		bgColor = theme.AccentColor
		textColor = theme.ButtonLabelColor
	case isSelected:
		bgColor = theme.HighlightColor
		textColor = theme.HighlightedTextColor
	}
	if key.Locked {
		borderColor = theme.AccentColor
	}

	radius := internal.Min32(rect.H/6, 12)
	internal.DrawRoundedBorder(renderer, &rect, radius, 3, borderColor, bgColor)

	kb.renderKeyLabel(renderer, key, rect, textColor)
}

func (kb *virtualKeyboard) renderKeyLabel(renderer *sdl.Renderer, key keyboard.KeyView, rect sdl.Rect, color sdl.Color) {
	iconSize := rect.H / 2
	if icon := internal.KeyIcon(renderer, kb.textureCache, key.ID, iconSize, color); icon != nil {
		renderer.Copy(icon, nil, &sdl.Rect{
			X: rect.X + (rect.W-iconSize)/2,
			Y: rect.Y + (rect.H-iconSize)/2,
			W: iconSize,
			H: iconSize,
		})
		return
	}

	label := key.Glyph
	font := internal.Fonts.MediumFont
	if key.ID == layout.Space {
		label = i18n.GetString(i18n.LanguageName)
		font = internal.Fonts.TinyFont
	} else if utf8.RuneCountInString(label) > 1 {
		font = internal.Fonts.TinyFont
	}

	internal.RenderCenteredText(renderer, kb.textureCache, font, label, color, &rect)
}

func (kb *virtualKeyboard) renderFooter(renderer *sdl.Renderer, view keyboard.View) {
	theme := internal.GetTheme()
	font := internal.Fonts.TinyFont
	window := internal.GetWindow()

	status := i18n.GetStringWithData(i18n.StatusLanguage, map[string]interface{}{
		"Language": i18n.GetString(i18n.LanguageName),
	}) + "   " + i18n.GetPluralString(i18n.CharCount, view.Text.Len())

	y := kb.geometry.footerY + (window.GetHeight()-kb.geometry.footerY-int32(font.Height()))/2

	// the status changes with every edit, so it bypasses the texture cache
	internal.RenderMultilineText(renderer, status, font, kb.geometry.keyboard.W/2, kb.geometry.keyboard.X, y, theme.HintColor, constants.TextAlignLeft)

	if texture, w, h := kb.textureCache.Text(renderer, font, i18n.GetString(i18n.HelpHint), theme.HintColor); texture != nil {
		renderer.Copy(texture, nil, &sdl.Rect{X: kb.geometry.keyboard.X + kb.geometry.keyboard.W - w, Y: y, W: w, H: h})
	}
}
