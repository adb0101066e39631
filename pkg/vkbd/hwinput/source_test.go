package hwinput

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

// fakeDevice replays events, then blocks until closed if block is set or returns io.EOF.
type fakeDevice struct {
	events []*evdev.InputEvent
	block  bool

	once   sync.Once
	closed chan struct{}
	closes atomic.Int32
}

func newFakeDevice(block bool, events ...*evdev.InputEvent) *fakeDevice {
	return &fakeDevice{events: events, block: block, closed: make(chan struct{})}
}

func (d *fakeDevice) ReadOne() (*evdev.InputEvent, error) {
	if len(d.events) > 0 {
		ev := d.events[0]
		d.events = d.events[1:]
		return ev, nil
	}
	if d.block {
		<-d.closed
		return nil, errors.New("device closed")
	}
	return nil, io.EOF
}

func (d *fakeDevice) Close() error {
	d.closes.Inc()
	d.once.Do(func() { close(d.closed) })
	return nil
}

func key(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

type recorder struct {
	events []keyboard.Event
}

func (r *recorder) Handle(_ context.Context, ev keyboard.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func TestKeyTableCoversLayout(t *testing.T) {
	seen := map[layout.KeyID]bool{}
	for _, id := range keyCodes {
		seen[id] = true
	}
	for _, id := range layout.Keys() {
		assert.True(t, seen[id], "no evdev code for %s", id)
	}
}

func TestTranslate(t *testing.T) {
	s := New(newFakeDevice(false), nil)

	_, ok := s.Translate(&evdev.InputEvent{Type: evdev.EV_SYN})
	assert.False(t, ok)
	_, ok = s.Translate(key(evdev.KEY_F12, valueDown))
	assert.False(t, ok)
	_, ok = s.Translate(nil)
	assert.False(t, ok)

	ev, ok := s.Translate(key(evdev.KEY_LEFTSHIFT, valueDown))
	require.True(t, ok)
	assert.Equal(t, keyboard.Event{Key: layout.ShiftLeft, Kind: keyboard.KeyDown, Shift: true}, ev)

	ev, _ = s.Translate(key(evdev.KEY_A, valueDown))
	assert.Equal(t, keyboard.Event{Key: layout.KeyA, Kind: keyboard.KeyDown, Shift: true}, ev)

	ev, _ = s.Translate(key(evdev.KEY_A, valueRepeat))
	assert.Equal(t, keyboard.Event{Key: layout.KeyA, Kind: keyboard.KeyDown, Repeat: true, Shift: true}, ev)

	ev, _ = s.Translate(key(evdev.KEY_LEFTSHIFT, valueUp))
	assert.Equal(t, keyboard.Event{Key: layout.ShiftLeft, Kind: keyboard.KeyUp}, ev)

	s.Translate(key(evdev.KEY_RIGHTCTRL, valueDown))
	ev, _ = s.Translate(key(evdev.KEY_LEFTALT, valueDown))
	assert.True(t, ev.Ctrl)
	assert.True(t, ev.Alt)

	ev, _ = s.Translate(key(evdev.KEY_KPENTER, valueDown))
	assert.Equal(t, layout.Enter, ev.Key)
}

func TestReleasingOneShiftReportsTheOther(t *testing.T) {
	s := New(newFakeDevice(false), nil)
	ctrl, err := keyboard.New(context.Background(), keyboard.Options{Highlight: time.Hour})
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)

	for _, ie := range []*evdev.InputEvent{
		key(evdev.KEY_LEFTSHIFT, valueDown),
		key(evdev.KEY_RIGHTSHIFT, valueDown),
		key(evdev.KEY_LEFTSHIFT, valueUp),
	} {
		ev, ok := s.Translate(ie)
		require.True(t, ok)
		require.NoError(t, ctrl.Handle(context.Background(), ev))
	}
	assert.True(t, ctrl.Modifiers().ShiftActive)

	ev, _ := s.Translate(key(evdev.KEY_RIGHTSHIFT, valueUp))
	assert.False(t, ev.Shift)
	require.NoError(t, ctrl.Handle(context.Background(), ev))
	assert.False(t, ctrl.Modifiers().ShiftActive)
}

func TestRunFeedsHandlerUntilEOF(t *testing.T) {
	dev := newFakeDevice(false,
		key(evdev.KEY_H, valueDown),
		&evdev.InputEvent{Type: evdev.EV_SYN},
		key(evdev.KEY_H, valueUp),
	)
	rec := &recorder{}

	err := New(dev, nil).Run(context.Background(), rec)
	assert.ErrorIs(t, err, io.EOF)
	require.Len(t, rec.events, 2)
	assert.Equal(t, keyboard.KeyUp, rec.events[1].Kind)
}

func TestRunTypesIntoController(t *testing.T) {
	c, err := keyboard.New(context.Background(), keyboard.Options{Highlight: time.Hour})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	dev := newFakeDevice(false,
		key(evdev.KEY_RIGHTSHIFT, valueDown),
		key(evdev.KEY_H, valueDown),
		key(evdev.KEY_H, valueUp),
		key(evdev.KEY_RIGHTSHIFT, valueUp),
		key(evdev.KEY_I, valueDown),
		key(evdev.KEY_I, valueUp),
		key(evdev.KEY_LEFTCTRL, valueDown),
		key(evdev.KEY_RIGHTALT, valueDown),
		key(evdev.KEY_RIGHTALT, valueUp),
		key(evdev.KEY_LEFTCTRL, valueUp),
		key(evdev.KEY_D, valueDown),
	)

	_ = New(dev, nil).Run(context.Background(), c)
	assert.Equal(t, "Hiв", c.State().Text)
	assert.Equal(t, layout.Russian, c.Modifiers().Language)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dev := newFakeDevice(true)

	done := make(chan error, 1)
	go func() { done <- New(dev, nil).Run(ctx, &recorder{}) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, int32(1), dev.closes.Load())
}

func TestOpenWithoutPath(t *testing.T) {
	_, err := Open("", nil)
	assert.ErrorIs(t, err, ErrNoDevice)
}
