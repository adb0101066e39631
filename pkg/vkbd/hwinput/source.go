// Package hwinput feeds key presses from a Linux evdev keyboard into a keyboard controller.
package hwinput

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	evdev "github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

var ErrNoDevice = errors.New("no input device configured")

// evdev key event values
const (
	valueUp     = 0
	valueDown   = 1
	valueRepeat = 2
)

// Device is the part of *evdev.InputDevice the source reads from.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Handler receives translated events. *keyboard.Controller implements it.
type Handler interface {
	Handle(ctx context.Context, ev keyboard.Event) error
}

// Source reads one evdev device and tracks the physical modifier levels the events carry.
type Source struct {
	dev    Device
	logger *slog.Logger

	held map[layout.KeyID]bool
}

// Open opens the evdev device at path.
func Open(path string, logger *slog.Logger) (*Source, error) {
	if path == "" {
		return nil, ErrNoDevice
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input device %s: %w", path, err)
	}

	s := New(dev, logger)
	if name, err := dev.Name(); err == nil {
		s.logger.Debug("Opened input device", "path", path, "name", name)
	}
	return s, nil
}

// New wraps an already open device.
func New(dev Device, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		dev:    dev,
		logger: logger,
		held:   make(map[layout.KeyID]bool),
	}
}

// CapsLockOn reports the device's caps lock LED, if the device exposes one.
func (s *Source) CapsLockOn() (bool, bool) {
	dev, ok := s.dev.(*evdev.InputDevice)
	if !ok {
		return false, false
	}
	leds, err := dev.State(evdev.EV_LED)
	if err != nil {
		s.logger.Debug("Failed to read LED state", "error", err)
		return false, false
	}
	return leds[evdev.LED_CAPSL], true
}

// Translate turns a raw event into a keyboard event. Non-key events and keys outside the
// layout report false.
func (s *Source) Translate(ie *evdev.InputEvent) (keyboard.Event, bool) {
	if ie == nil || ie.Type != evdev.EV_KEY {
		return keyboard.Event{}, false
	}

	id, ok := KeyFor(ie.Code)
	if !ok {
		return keyboard.Event{}, false
	}

	ev := keyboard.Event{Key: id}
	switch ie.Value {
	case valueUp:
		ev.Kind = keyboard.KeyUp
		delete(s.held, id)
	case valueDown:
		ev.Kind = keyboard.KeyDown
		s.held[id] = true
	case valueRepeat:
		ev.Kind = keyboard.KeyDown
		ev.Repeat = true
	default:
		return keyboard.Event{}, false
	}

	ev.Shift = s.held[layout.ShiftLeft] || s.held[layout.ShiftRight]
	ev.Ctrl = s.held[layout.ControlLeft] || s.held[layout.ControlRight]
	ev.Alt = s.held[layout.AltLeft] || s.held[layout.AltRight]
	return ev, true
}

// Run reads events until ctx is cancelled or the device fails. Cancelling ctx closes the
// device to unblock the pending read.
func (s *Source) Run(ctx context.Context, h Handler) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.dev.Close()
	})
	defer stop()

	for {
		ie, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to read input event: %w", err)
		}

		ev, ok := s.Translate(ie)
		if !ok {
			continue
		}

		if err := h.Handle(ctx, ev); err != nil {
			s.logger.Error("Failed to handle input event", "key", ev.Key, "kind", ev.Kind, "error", err)
		}
	}
}

// Close closes the device.
func (s *Source) Close() error {
	return s.dev.Close()
}
