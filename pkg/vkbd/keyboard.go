package vkbd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/constants"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/hwinput"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/i18n"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/internal"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/modifier"
	"github.com/veandco/go-sdl2/sdl"
)

type KeyboardOptions struct {
	// Store persists the keyboard language. Nil keeps it in memory only.
	Store     modifier.Store
	Highlight time.Duration
	TabWidth  int
	// Device is an optional evdev source typed into alongside the SDL window. Keyboard closes it.
	Device *hwinput.Source
	Logger *slog.Logger
}

type virtualKeyboard struct {
	ctx    context.Context
	ctrl   *keyboard.Controller
	logger *slog.Logger

	geometry      keyGeometry
	selectedRow   int
	selectedCol   int
	textureCache  *internal.TextureCache
	CursorVisible bool

	LastCursorBlink time.Time
	CursorBlinkRate time.Duration

	helpOverlay  *helpOverlay
	ShowingHelp  bool
	EnterPressed bool

	InputDelay    time.Duration
	lastInputTime time.Time

	heldDirections struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// Keyboard shows the bilingual keyboard in the SDL window until the user confirms or cancels.
// Returns ErrCancelled if the user exits without confirming.
func Keyboard(ctx context.Context, initialText string, opts KeyboardOptions) (*KeyboardResult, error) {
	if opts.Logger == nil {
		opts.Logger = internal.GetLogger()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl, err := keyboard.New(ctx, keyboard.Options{
		Store:     opts.Store,
		Logger:    opts.Logger,
		Text:      initialText,
		Highlight: opts.Highlight,
		TabWidth:  opts.TabWidth,
		OnLanguage: func(lang layout.Language) {
			if err := i18n.SetWithCode(string(lang)); err != nil {
				opts.Logger.Error("Failed to switch UI language", "language", lang, "error", err)
			}
		},
	})
	if err != nil {
		if opts.Device != nil {
			_ = opts.Device.Close()
		}
		return nil, err
	}
	defer ctrl.Close()

	if err := i18n.SetWithCode(string(ctrl.Modifiers().Language)); err != nil {
		opts.Logger.Warn("Failed to set UI language", "error", err)
	}

	ctrl.SyncCapsLock(uint32(sdl.GetModState())&uint32(sdl.KMOD_CAPS) != 0)

	if opts.Device != nil {
		if on, ok := opts.Device.CapsLockOn(); ok {
			ctrl.SyncCapsLock(on)
		}
		// Run closes the device once ctx is cancelled
		go func() {
			if err := opts.Device.Run(ctx, ctrl); err != nil && !errors.Is(err, context.Canceled) {
				opts.Logger.Error("Input device stopped", "error", err)
			}
		}()
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	kb := newVirtualKeyboard(ctx, ctrl, opts.Logger, window.GetWidth(), window.GetHeight())
	defer kb.textureCache.Destroy()

	for {
		if ctx.Err() != nil {
			break
		}

		if kb.handleEvents() {
			break
		}

		kb.handleDirectionalRepeats()

		kb.updateCursorBlink()
		kb.render(renderer)
		sdl.Delay(constants.FrameDelay)
	}

	if kb.EnterPressed {
		res := KeyboardResult{Text: ctrl.State().Text}
		return &res, nil
	}
	return nil, ErrCancelled
}

func newVirtualKeyboard(ctx context.Context, ctrl *keyboard.Controller, logger *slog.Logger, windowWidth, windowHeight int32) *virtualKeyboard {
	kb := &virtualKeyboard{
		ctx:             ctx,
		ctrl:            ctrl,
		logger:          logger,
		geometry:        newKeyGeometry(windowWidth, windowHeight),
		textureCache:    internal.NewTextureCache(),
		CursorVisible:   true,
		LastCursorBlink: time.Now(),
		CursorBlinkRate: constants.CursorBlinkRate,
		InputDelay:      constants.DefaultInputDelay,
		repeatDelay:     constants.RepeatDelay,
		repeatInterval:  constants.RepeatInterval,
	}

	kb.selectedRow, kb.selectedCol = kb.geometry.find(layout.KeyQ)

	return kb
}

func (kb *virtualKeyboard) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent, *sdl.MouseButtonEvent, *sdl.TouchFingerEvent,
			*sdl.ControllerButtonEvent, *sdl.JoyButtonEvent, *sdl.JoyHatEvent:
			for inputEvent := processor.ProcessSDLEvent(event); inputEvent != nil; inputEvent = kb.nextQueued(processor) {
				if kb.handleInputEvent(inputEvent) {
					return true
				}
			}
		}
	}
	return false
}

func (kb *virtualKeyboard) nextQueued(processor *internal.Processor) *internal.Event {
	if !processor.Pending() {
		return nil
	}
	return processor.ProcessSDLEvent(nil)
}

func (kb *virtualKeyboard) handleInputEvent(inputEvent *internal.Event) bool {
	switch {
	case inputEvent.Key != nil:
		if kb.ShowingHelp {
			if inputEvent.Pressed {
				kb.toggleHelp()
			}
			return false
		}
		kb.dispatch(*inputEvent.Key)
		return false
	case inputEvent.Source == internal.SourcePointer:
		if inputEvent.Pressed {
			kb.handlePointer(inputEvent.X, inputEvent.Y)
		}
		return false
	case inputEvent.Pressed:
		return kb.handleButton(inputEvent.Button)
	default:
		kb.handleButtonRelease(inputEvent.Button)
		return false
	}
}

func (kb *virtualKeyboard) handleButton(button constants.VirtualButton) bool {
	// Rate limit navigation to prevent too-fast input
	if kb.isDirectionalButton(button) {
		if time.Since(kb.lastInputTime) < kb.InputDelay {
			return false
		}
		kb.lastInputTime = time.Now()
	}

	// Help toggle - always available
	if button == constants.VirtualButtonMenu {
		kb.toggleHelp()
		return false
	}

	if kb.ShowingHelp {
		return kb.handleHelpButton(button)
	}

	switch button {
	case constants.VirtualButtonUp:
		kb.navigate(button)
		kb.heldDirections.up, kb.heldDirections.down = true, false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonDown:
		kb.navigate(button)
		kb.heldDirections.down, kb.heldDirections.up = true, false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonLeft:
		kb.navigate(button)
		kb.heldDirections.left, kb.heldDirections.right = true, false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonRight:
		kb.navigate(button)
		kb.heldDirections.right, kb.heldDirections.left = true, false
		kb.lastRepeatTime = time.Now()
	case constants.VirtualButtonA:
		kb.click(kb.selectedKey())
	case constants.VirtualButtonB:
		kb.click(layout.Backspace)
	case constants.VirtualButtonX:
		kb.click(layout.Space)
	case constants.VirtualButtonSelect:
		kb.click(layout.ShiftLeft)
	case constants.VirtualButtonL2:
		// clicking both latches fires the language toggle
		kb.click(layout.ControlLeft)
		kb.click(layout.AltLeft)
	case constants.VirtualButtonR2:
		kb.click(layout.CapsLock)
	case constants.VirtualButtonL1:
		kb.moveCursor(-1)
	case constants.VirtualButtonR1:
		kb.moveCursor(1)
	case constants.VirtualButtonY:
		return true // Exit without saving
	case constants.VirtualButtonStart:
		kb.EnterPressed = true
		return true // Exit and save
	}

	return false
}

func (kb *virtualKeyboard) isDirectionalButton(button constants.VirtualButton) bool {
	return button == constants.VirtualButtonUp || button == constants.VirtualButtonDown ||
		button == constants.VirtualButtonLeft || button == constants.VirtualButtonRight
}

func (kb *virtualKeyboard) handleHelpButton(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonUp:
		kb.helpOverlay.scroll(-1)
	case constants.VirtualButtonDown:
		kb.helpOverlay.scroll(1)
	default:
		kb.toggleHelp()
	}
	return false
}

func (kb *virtualKeyboard) handleButtonRelease(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		kb.heldDirections.up = false
	case constants.VirtualButtonDown:
		kb.heldDirections.down = false
	case constants.VirtualButtonLeft:
		kb.heldDirections.left = false
	case constants.VirtualButtonRight:
		kb.heldDirections.right = false
	default:
		return
	}
	kb.hasRepeated = false
}

func (kb *virtualKeyboard) handleDirectionalRepeats() {
	if !kb.heldDirections.up && !kb.heldDirections.down && !kb.heldDirections.left && !kb.heldDirections.right {
		kb.lastRepeatTime = time.Now()
		kb.hasRepeated = false
		return
	}

	// Use repeatDelay for first repeat, then repeatInterval for subsequent repeats
	threshold := kb.repeatInterval
	if !kb.hasRepeated {
		threshold = kb.repeatDelay
	}

	if time.Since(kb.lastRepeatTime) < threshold {
		return
	}

	kb.lastRepeatTime = time.Now()
	kb.hasRepeated = true

	switch {
	case kb.heldDirections.up:
		kb.navigate(constants.VirtualButtonUp)
	case kb.heldDirections.down:
		kb.navigate(constants.VirtualButtonDown)
	case kb.heldDirections.left:
		kb.navigate(constants.VirtualButtonLeft)
	case kb.heldDirections.right:
		kb.navigate(constants.VirtualButtonRight)
	}
}

func (kb *virtualKeyboard) navigate(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		kb.selectedRow, kb.selectedCol = kb.geometry.moveVertical(kb.selectedRow, kb.selectedCol, -1)
	case constants.VirtualButtonDown:
		kb.selectedRow, kb.selectedCol = kb.geometry.moveVertical(kb.selectedRow, kb.selectedCol, 1)
	case constants.VirtualButtonLeft:
		kb.selectedCol = kb.geometry.moveHorizontal(kb.selectedRow, kb.selectedCol, -1)
	case constants.VirtualButtonRight:
		kb.selectedCol = kb.geometry.moveHorizontal(kb.selectedRow, kb.selectedCol, 1)
	}
}

func (kb *virtualKeyboard) selectedKey() layout.KeyID {
	return kb.geometry.rows[kb.selectedRow][kb.selectedCol].id
}

func (kb *virtualKeyboard) handlePointer(x, y int32) {
	if kb.ShowingHelp {
		kb.toggleHelp()
		return
	}

	point := sdl.Point{X: x, Y: y}
	if point.InRect(&kb.geometry.textInput) {
		kb.placeCursorAt(x)
		return
	}

	row, col, ok := kb.geometry.hit(point)
	if !ok {
		return
	}
	kb.selectedRow, kb.selectedCol = row, col
	kb.click(kb.selectedKey())
}

func (kb *virtualKeyboard) click(id layout.KeyID) {
	kb.dispatch(keyboard.Press(id))
}

func (kb *virtualKeyboard) dispatch(ev keyboard.Event) {
	if err := kb.ctrl.Handle(kb.ctx, ev); err != nil {
		kb.logger.Error("Failed to handle key", "key", ev.Key, "kind", ev.Kind, "error", err)
		return
	}
	kb.resetCursorBlink()
}

func (kb *virtualKeyboard) moveCursor(direction int) {
	kb.ctrl.MoveCaret(direction)
	kb.resetCursorBlink()
}

func (kb *virtualKeyboard) resetCursorBlink() {
	kb.CursorVisible = true
	kb.LastCursorBlink = time.Now()
}

func (kb *virtualKeyboard) updateCursorBlink() {
	if time.Since(kb.LastCursorBlink) > kb.CursorBlinkRate {
		kb.CursorVisible = !kb.CursorVisible
		kb.LastCursorBlink = time.Now()
	}
}

func (kb *virtualKeyboard) toggleHelp() {
	if kb.helpOverlay == nil {
		kb.helpOverlay = newHelpOverlay(i18n.HelpTitle, i18n.HelpLines, i18n.HelpClose)
	}
	kb.helpOverlay.toggle()
	kb.ShowingHelp = kb.helpOverlay.ShowingHelp
}
