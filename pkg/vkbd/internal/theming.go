package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	HighlightColor       sdl.Color // Color1: selected key background
	AccentColor          sdl.Color // Color2: pressed keys, latched modifiers, caret
	ButtonLabelColor     sdl.Color // Color3: label text on accent keys
	TextColor            sdl.Color // Color4: default text color
	HighlightedTextColor sdl.Color // Color5: text on the selected key
	HintColor            sdl.Color // Color6: help text, placeholder, status line
	BackgroundColor      sdl.Color // BGColor: screen background
	KeyColor             sdl.Color
	KeyBorderColor       sdl.Color
	FontPath             string
	BackgroundImagePath  string
}

var currentTheme Theme

func SetTheme(theme Theme) {
	if theme.KeyColor == (sdl.Color{}) {
		theme.KeyColor = sdl.Color{R: 50, G: 50, B: 60, A: 255}
	}
	if theme.KeyBorderColor == (sdl.Color{}) {
		theme.KeyBorderColor = sdl.Color{R: 70, G: 70, B: 80, A: 255}
	}
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
