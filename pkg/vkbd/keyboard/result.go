package keyboard

import "errors"

// ErrCancelled is returned by a render surface when the user backs out without confirming.
var ErrCancelled = errors.New("operation cancelled by user")

// Result is the confirmed outcome of a keyboard session.
type Result struct {
	Text string
}
