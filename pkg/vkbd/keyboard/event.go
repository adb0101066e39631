package keyboard

import (
	"fmt"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

// Kind is the edge an input event reports.
type Kind int

const (
	// KeyDown is a physical press. Repeat marks auto-repeat while held.
	KeyDown Kind = iota
	// KeyUp is a physical release.
	KeyUp
	// Click activates an on-screen key with a pointer or a controller button.
	Click
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case Click:
		return "click"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is one input event resolved to a key. Shift, Ctrl and Alt carry the physical modifier
// levels the source observed alongside the key; they are ignored for clicks.
type Event struct {
	Key    layout.KeyID
	Kind   Kind
	Repeat bool
	Shift  bool
	Ctrl   bool
	Alt    bool
}

// Down is a convenience constructor for a press without modifiers.
func Down(id layout.KeyID) Event {
	return Event{Key: id, Kind: KeyDown}
}

// Up is a convenience constructor for a release without modifiers.
func Up(id layout.KeyID) Event {
	return Event{Key: id, Kind: KeyUp}
}

// Press is a convenience constructor for an on-screen click.
func Press(id layout.KeyID) Event {
	return Event{Key: id, Kind: Click}
}
