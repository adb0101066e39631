package vkbd

import "github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"

var (
	ErrCancelled = keyboard.ErrCancelled
)

// KeyboardResult is the text the user confirmed.
type KeyboardResult = keyboard.Result
