package keyboard

import (
	"time"

	"go.uber.org/atomic"
)

// highlight is the lit state of one key. The timer callback only touches lit, so a late
// release can never reach editor or modifier state.
type highlight struct {
	lit   atomic.Bool
	gen   atomic.Uint64
	timer *time.Timer
}

// light turns the key on and schedules it off after d. Only the most recent activation's
// timer may clear it. Callers hold the controller lock.
func (h *highlight) light(d time.Duration, released func()) {
	gen := h.gen.Inc()
	h.lit.Store(true)

	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = time.AfterFunc(d, func() {
		if h.gen.Load() != gen {
			return
		}
		h.lit.Store(false)
		if released != nil {
			released()
		}
	})
}

func (h *highlight) stop() {
	h.gen.Inc()
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.lit.Store(false)
}
