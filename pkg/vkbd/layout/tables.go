package layout

const (
	Backquote    KeyID = "Backquote"
	Digit1       KeyID = "Digit1"
	Digit2       KeyID = "Digit2"
	Digit3       KeyID = "Digit3"
	Digit4       KeyID = "Digit4"
	Digit5       KeyID = "Digit5"
	Digit6       KeyID = "Digit6"
	Digit7       KeyID = "Digit7"
	Digit8       KeyID = "Digit8"
	Digit9       KeyID = "Digit9"
	Digit0       KeyID = "Digit0"
	Minus        KeyID = "Minus"
	Equal        KeyID = "Equal"
	Backspace    KeyID = "Backspace"
	Tab          KeyID = "Tab"
	KeyQ         KeyID = "KeyQ"
	KeyW         KeyID = "KeyW"
	KeyE         KeyID = "KeyE"
	KeyR         KeyID = "KeyR"
	KeyT         KeyID = "KeyT"
	KeyY         KeyID = "KeyY"
	KeyU         KeyID = "KeyU"
	KeyI         KeyID = "KeyI"
	KeyO         KeyID = "KeyO"
	KeyP         KeyID = "KeyP"
	BracketLeft  KeyID = "BracketLeft"
	BracketRight KeyID = "BracketRight"
	Backslash    KeyID = "Backslash"
	Delete       KeyID = "Delete"
	CapsLock     KeyID = "CapsLock"
	KeyA         KeyID = "KeyA"
	KeyS         KeyID = "KeyS"
	KeyD         KeyID = "KeyD"
	KeyF         KeyID = "KeyF"
	KeyG         KeyID = "KeyG"
	KeyH         KeyID = "KeyH"
	KeyJ         KeyID = "KeyJ"
	KeyK         KeyID = "KeyK"
	KeyL         KeyID = "KeyL"
	Semicolon    KeyID = "Semicolon"
	Quote        KeyID = "Quote"
	Enter        KeyID = "Enter"
	ShiftLeft    KeyID = "ShiftLeft"
	KeyZ         KeyID = "KeyZ"
	KeyX         KeyID = "KeyX"
	KeyC         KeyID = "KeyC"
	KeyV         KeyID = "KeyV"
	KeyB         KeyID = "KeyB"
	KeyN         KeyID = "KeyN"
	KeyM         KeyID = "KeyM"
	Comma        KeyID = "Comma"
	Period       KeyID = "Period"
	Slash        KeyID = "Slash"
	ArrowUp      KeyID = "ArrowUp"
	ShiftRight   KeyID = "ShiftRight"
	ControlLeft  KeyID = "ControlLeft"
	MetaLeft     KeyID = "MetaLeft"
	AltLeft      KeyID = "AltLeft"
	Space        KeyID = "Space"
	AltRight     KeyID = "AltRight"
	ArrowLeft    KeyID = "ArrowLeft"
	ArrowDown    KeyID = "ArrowDown"
	ArrowRight   KeyID = "ArrowRight"
	ControlRight KeyID = "ControlRight"
)

var rows = [][]KeyID{
	// Row 1: backquote, digits, minus/equal + backspace
	{Backquote, Digit1, Digit2, Digit3, Digit4, Digit5, Digit6, Digit7, Digit8, Digit9, Digit0, Minus, Equal, Backspace},
	// Row 2: tab + qwerty row + delete
	{Tab, KeyQ, KeyW, KeyE, KeyR, KeyT, KeyY, KeyU, KeyI, KeyO, KeyP, BracketLeft, BracketRight, Backslash, Delete},
	// Row 3: caps lock + asdf row + enter
	{CapsLock, KeyA, KeyS, KeyD, KeyF, KeyG, KeyH, KeyJ, KeyK, KeyL, Semicolon, Quote, Enter},
	// Row 4: shifts around the zxcv row + arrow up
	{ShiftLeft, KeyZ, KeyX, KeyC, KeyV, KeyB, KeyN, KeyM, Comma, Period, Slash, ArrowUp, ShiftRight},
	// Row 5: modifiers, space, arrows
	{ControlLeft, MetaLeft, AltLeft, Space, AltRight, ArrowLeft, ArrowDown, ArrowRight, ControlRight},
}

var widths = map[KeyID]float64{
	Backspace:   2,
	Tab:         1.5,
	Delete:      1.5,
	CapsLock:    2,
	Enter:       2,
	ShiftLeft:   2.5,
	ShiftRight:  1.5,
	ControlLeft: 1.5,
	Space:       6,
}

// character keys, row by row, in the order their glyph strings below are written
var charKeys = [][]KeyID{
	{Backquote, Digit1, Digit2, Digit3, Digit4, Digit5, Digit6, Digit7, Digit8, Digit9, Digit0, Minus, Equal},
	{KeyQ, KeyW, KeyE, KeyR, KeyT, KeyY, KeyU, KeyI, KeyO, KeyP, BracketLeft, BracketRight, Backslash},
	{KeyA, KeyS, KeyD, KeyF, KeyG, KeyH, KeyJ, KeyK, KeyL, Semicolon, Quote},
	{KeyZ, KeyX, KeyC, KeyV, KeyB, KeyN, KeyM, Comma, Period, Slash},
}

// glyphs shared by every map
var fixedGlyphs = KeyMap{
	Backspace:    "Backspace",
	Tab:          "Tab",
	Delete:       "Del",
	CapsLock:     "CapsLock",
	Enter:        "Enter",
	ShiftLeft:    "Shift",
	ShiftRight:   "Shift",
	ControlLeft:  "Ctrl",
	ControlRight: "Ctrl",
	MetaLeft:     "Win",
	AltLeft:      "Alt",
	AltRight:     "Alt",
	Space:        " ",
	ArrowUp:      "↑",
	ArrowLeft:    "←",
	ArrowDown:    "↓",
	ArrowRight:   "→",
}

var (
	BaseEN = buildKeyMap([]string{
		"`1234567890-=",
		`qwertyuiop[]\`,
		"asdfghjkl;'",
		"zxcvbnm,./",
	})
	ShiftEN = buildKeyMap([]string{
		"~!@#$%^&*()_+",
		"QWERTYUIOP{}|",
		`ASDFGHJKL:"`,
		"ZXCVBNM<>?",
	})
	BaseRU = buildKeyMap([]string{
		"ё1234567890-=",
		`йцукенгшщзхъ\`,
		"фывапролджэ",
		"ячсмитьбю.",
	})
	ShiftRU = buildKeyMap([]string{
		`Ё!"№;%:?*()_+`,
		"ЙЦУКЕНГШЩЗХЪ/",
		"ФЫВАПРОЛДЖЭ",
		"ЯЧСМИТЬБЮ,",
	})
)

func buildKeyMap(charRows []string) KeyMap {
	m := make(KeyMap, len(fixedGlyphs)+47)
	for id, g := range fixedGlyphs {
		m[id] = g
	}
	for r, chars := range charRows {
		i := 0
		for _, char := range chars {
			if i < len(charKeys[r]) {
				m[charKeys[r][i]] = string(char)
			}
			i++
		}
	}
	return m
}
