package constants

import (
	"os"
	"strings"
	"time"
)

const BackgroundPathEnvVar = "BACKGROUND_PATH"

const (
	DefaultInputDelay = 20 * time.Millisecond
	RepeatDelay       = 300 * time.Millisecond
	RepeatInterval    = 50 * time.Millisecond
	CursorBlinkRate   = 500 * time.Millisecond
	FrameDelay        = 16
)

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// IsDevMode reports whether the process runs on a desktop rather than a handheld.
func IsDevMode() bool {
	return strings.EqualFold(os.Getenv("ENVIRONMENT"), "DEV")
}
