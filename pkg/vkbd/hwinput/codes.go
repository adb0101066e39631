package hwinput

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

// keyCodes maps evdev key codes to the keyboard's keys. The keypad Enter doubles as Enter.
var keyCodes = map[evdev.EvCode]layout.KeyID{
	evdev.KEY_GRAVE:     layout.Backquote,
	evdev.KEY_1:         layout.Digit1,
	evdev.KEY_2:         layout.Digit2,
	evdev.KEY_3:         layout.Digit3,
	evdev.KEY_4:         layout.Digit4,
	evdev.KEY_5:         layout.Digit5,
	evdev.KEY_6:         layout.Digit6,
	evdev.KEY_7:         layout.Digit7,
	evdev.KEY_8:         layout.Digit8,
	evdev.KEY_9:         layout.Digit9,
	evdev.KEY_0:         layout.Digit0,
	evdev.KEY_MINUS:     layout.Minus,
	evdev.KEY_EQUAL:     layout.Equal,
	evdev.KEY_BACKSPACE: layout.Backspace,

	evdev.KEY_TAB:        layout.Tab,
	evdev.KEY_Q:          layout.KeyQ,
	evdev.KEY_W:          layout.KeyW,
	evdev.KEY_E:          layout.KeyE,
	evdev.KEY_R:          layout.KeyR,
	evdev.KEY_T:          layout.KeyT,
	evdev.KEY_Y:          layout.KeyY,
	evdev.KEY_U:          layout.KeyU,
	evdev.KEY_I:          layout.KeyI,
	evdev.KEY_O:          layout.KeyO,
	evdev.KEY_P:          layout.KeyP,
	evdev.KEY_LEFTBRACE:  layout.BracketLeft,
	evdev.KEY_RIGHTBRACE: layout.BracketRight,
	evdev.KEY_BACKSLASH:  layout.Backslash,
	evdev.KEY_DELETE:     layout.Delete,

	evdev.KEY_CAPSLOCK:   layout.CapsLock,
	evdev.KEY_A:          layout.KeyA,
	evdev.KEY_S:          layout.KeyS,
	evdev.KEY_D:          layout.KeyD,
	evdev.KEY_F:          layout.KeyF,
	evdev.KEY_G:          layout.KeyG,
	evdev.KEY_H:          layout.KeyH,
	evdev.KEY_J:          layout.KeyJ,
	evdev.KEY_K:          layout.KeyK,
	evdev.KEY_L:          layout.KeyL,
	evdev.KEY_SEMICOLON:  layout.Semicolon,
	evdev.KEY_APOSTROPHE: layout.Quote,
	evdev.KEY_ENTER:      layout.Enter,
	evdev.KEY_KPENTER:    layout.Enter,

	evdev.KEY_LEFTSHIFT:  layout.ShiftLeft,
	evdev.KEY_Z:          layout.KeyZ,
	evdev.KEY_X:          layout.KeyX,
	evdev.KEY_C:          layout.KeyC,
	evdev.KEY_V:          layout.KeyV,
	evdev.KEY_B:          layout.KeyB,
	evdev.KEY_N:          layout.KeyN,
	evdev.KEY_M:          layout.KeyM,
	evdev.KEY_COMMA:      layout.Comma,
	evdev.KEY_DOT:        layout.Period,
	evdev.KEY_SLASH:      layout.Slash,
	evdev.KEY_UP:         layout.ArrowUp,
	evdev.KEY_RIGHTSHIFT: layout.ShiftRight,

	evdev.KEY_LEFTCTRL:  layout.ControlLeft,
	evdev.KEY_LEFTMETA:  layout.MetaLeft,
	evdev.KEY_LEFTALT:   layout.AltLeft,
	evdev.KEY_SPACE:     layout.Space,
	evdev.KEY_RIGHTALT:  layout.AltRight,
	evdev.KEY_LEFT:      layout.ArrowLeft,
	evdev.KEY_DOWN:      layout.ArrowDown,
	evdev.KEY_RIGHT:     layout.ArrowRight,
	evdev.KEY_RIGHTCTRL: layout.ControlRight,
}

// KeyFor resolves an evdev key code.
func KeyFor(code evdev.EvCode) (layout.KeyID, bool) {
	id, ok := keyCodes[code]
	return id, ok
}
