// Package keyboard is the virtual keyboard controller. A Controller owns one text surface's
// editor state and the modifier state machine, routes input events to them and produces the
// view a render surface draws.
//
// All handlers are serialised by the controller's mutex, so any number of input sources may
// feed one controller from their own goroutines.
package keyboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/editor"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/modifier"
)

// DefaultHighlight is how long a key stays lit after activation.
const DefaultHighlight = 100 * time.Millisecond

type Options struct {
	Store     modifier.Store
	Logger    *slog.Logger
	Text      string
	Highlight time.Duration
	TabWidth  int

	// OnEdit receives the editor state after every edit.
	OnEdit func(editor.State)
	// OnRedraw is called whenever the view changed. It may be called from a timer goroutine.
	OnRedraw func()
	// OnLanguage is called after the Ctrl+Alt toggle.
	OnLanguage func(layout.Language)
}

// chord tracks the Ctrl+Alt gesture. Physical levels come from key events; latches come
// from clicks on the on-screen keys.
type chord struct {
	ctrl, alt               bool
	ctrlLatched, altLatched bool
	active                  bool
}

type Controller struct {
	mu sync.Mutex

	text   editor.State
	mods   *modifier.Machine
	chord  chord
	lights map[layout.KeyID]*highlight
	closed bool

	highlight time.Duration
	tabWidth  int
	logger    *slog.Logger

	onEdit     func(editor.State)
	onRedraw   func()
	onLanguage func(layout.Language)
}

// New builds a controller with the caret at the end of opts.Text.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("layout table is inconsistent: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Highlight <= 0 {
		opts.Highlight = DefaultHighlight
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = layout.TabWidth
	}

	c := &Controller{
		text:       editor.At(opts.Text, len([]rune(opts.Text))),
		mods:       modifier.New(ctx, opts.Store, logger),
		lights:     make(map[layout.KeyID]*highlight),
		highlight:  opts.Highlight,
		tabWidth:   opts.TabWidth,
		logger:     logger,
		onEdit:     opts.OnEdit,
		onRedraw:   opts.OnRedraw,
		onLanguage: opts.OnLanguage,
	}
	for _, id := range layout.Keys() {
		c.lights[id] = &highlight{}
	}

	return c, nil
}

// notice collects the callbacks one handler owes, fired after the lock is released.
type notice struct {
	edited   bool
	redraw   bool
	language bool
}

// Handle routes one input event. Unknown keys are logged and reported as layout.ErrUnknownKey.
func (c *Controller) Handle(ctx context.Context, ev Event) error {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return nil
	}

	action := layout.ActionFor(ev.Key)
	if action.Kind == layout.ActionNone {
		c.mu.Unlock()
		c.logger.Error("Event for key outside the layout", "key", ev.Key, "kind", ev.Kind)
		return fmt.Errorf("%w: %s", layout.ErrUnknownKey, ev.Key)
	}

	var n notice
	if ev.Kind == Click {
		c.handleClick(ctx, ev, action, &n)
	} else {
		c.handleKey(ctx, ev, action, &n)
	}

	state := c.text
	lang := c.mods.State().Language
	c.mu.Unlock()

	c.fire(n, state, lang)
	return nil
}

func (c *Controller) handleKey(ctx context.Context, ev Event, action layout.Action, n *notice) {
	down := ev.Kind == KeyDown

	// releasing one Shift keeps the level while the other is still held
	shiftHeld := ev.Shift
	if action.Kind == layout.ActionShift {
		shiftHeld = down || ev.Shift
	}
	if c.mods.SetShift(shiftHeld) {
		n.redraw = true
	}

	c.chord.ctrl = ev.Ctrl
	c.chord.alt = ev.Alt
	switch action.Kind {
	case layout.ActionCtrl:
		c.chord.ctrl = down
	case layout.ActionAlt:
		c.chord.alt = down
	}
	c.checkChord(ctx, n)

	if !down {
		return
	}

	c.light(ev.Key, n)

	switch action.Kind {
	case layout.ActionCapsLock:
		if !ev.Repeat {
			c.mods.ToggleCapsLock()
			n.redraw = true
		}
	default:
		c.edit(ev.Key, action, n)
	}
}

// handleClick activates an on-screen key. Clicked modifiers latch: Shift and Caps Lock toggle,
// and clicking Ctrl then Alt (in either order) toggles the language.
func (c *Controller) handleClick(ctx context.Context, ev Event, action layout.Action, n *notice) {
	c.light(ev.Key, n)

	switch action.Kind {
	case layout.ActionShift:
		c.mods.SetShift(!c.mods.State().ShiftActive)
		n.redraw = true
	case layout.ActionCapsLock:
		c.mods.ToggleCapsLock()
		n.redraw = true
	case layout.ActionCtrl:
		c.chord.ctrlLatched = !c.chord.ctrlLatched
		c.checkLatches(ctx, n)
	case layout.ActionAlt:
		c.chord.altLatched = !c.chord.altLatched
		c.checkLatches(ctx, n)
	default:
		c.edit(ev.Key, action, n)
	}
}

// checkChord toggles the language once per Ctrl+Alt press. The chord re-arms only after
// Ctrl or Alt is released.
func (c *Controller) checkChord(ctx context.Context, n *notice) {
	held := c.chord.ctrl && c.chord.alt
	switch {
	case held && !c.chord.active:
		c.chord.active = true
		c.toggleLanguage(ctx, n)
	case !held && c.chord.active:
		c.chord.active = false
		c.logger.Debug("Language chord released")
	}
}

func (c *Controller) checkLatches(ctx context.Context, n *notice) {
	n.redraw = true
	if c.chord.ctrlLatched && c.chord.altLatched {
		c.chord.ctrlLatched = false
		c.chord.altLatched = false
		c.toggleLanguage(ctx, n)
	}
}

func (c *Controller) toggleLanguage(ctx context.Context, n *notice) {
	c.mods.ToggleLanguage(ctx)
	n.redraw = true
	n.language = true
}

func (c *Controller) edit(id layout.KeyID, action layout.Action, n *notice) {
	var cmd editor.Command

	switch action.Kind {
	case layout.ActionInsert:
		glyph, err := c.mods.DisplayGlyph(id)
		if err != nil {
			c.logger.Error("Failed to resolve glyph", "key", id, "error", err)
			return
		}
		cmd = editor.Command{Op: editor.OpInsert, Glyph: glyph}
	case layout.ActionIndent:
		width := action.Width
		if id == layout.Tab {
			width = c.tabWidth
		}
		cmd = editor.Command{Op: editor.OpIndent, Width: width}
	case layout.ActionEnter:
		cmd = editor.Command{Op: editor.OpEnter}
	case layout.ActionBackspace:
		cmd = editor.Command{Op: editor.OpBackspace}
	case layout.ActionDelete:
		cmd = editor.Command{Op: editor.OpDelete}
	default:
		return
	}

	c.text = editor.Apply(c.text, cmd)
	n.edited = true
	n.redraw = true
	c.logger.Debug("Edit applied", "op", cmd.Op, "key", id, "start", c.text.Start, "end", c.text.End)
}

func (c *Controller) light(id layout.KeyID, n *notice) {
	h, ok := c.lights[id]
	if !ok {
		return
	}
	h.light(c.highlight, c.redraw)
	n.redraw = true
}

func (c *Controller) redraw() {
	if c.onRedraw != nil {
		c.onRedraw()
	}
}

func (c *Controller) fire(n notice, state editor.State, lang layout.Language) {
	if n.edited && c.onEdit != nil {
		c.onEdit(state)
	}
	if n.language && c.onLanguage != nil {
		c.onLanguage(lang)
	}
	if n.redraw {
		c.redraw()
	}
}

// SyncCapsLock aligns caps lock with a source that can query the real lock state.
func (c *Controller) SyncCapsLock(on bool) {
	c.mu.Lock()
	changed := c.mods.State().CapsLockActive != on
	if changed {
		c.mods.ToggleCapsLock()
	}
	c.mu.Unlock()

	if changed {
		c.redraw()
	}
}

// State returns the current text and caret.
func (c *Controller) State() editor.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Modifiers returns the current modifier state.
func (c *Controller) Modifiers() modifier.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mods.State()
}

// SetText replaces the text and puts the caret at its end.
func (c *Controller) SetText(text string) {
	c.update(func(editor.State) editor.State {
		return editor.At(text, len([]rune(text)))
	})
}

// SetSelection moves the caret or selection. Out-of-range values are clamped.
func (c *Controller) SetSelection(start, end int) {
	c.update(func(s editor.State) editor.State {
		s.Start, s.End = start, end
		return editor.Clamp(s)
	})
}

// MoveCaret collapses the selection and moves the caret by delta characters.
func (c *Controller) MoveCaret(delta int) {
	c.update(func(s editor.State) editor.State {
		return editor.MoveCaret(s, delta)
	})
}

func (c *Controller) update(fn func(editor.State) editor.State) {
	c.mu.Lock()
	c.text = fn(c.text)
	state := c.text
	lang := c.mods.State().Language
	c.mu.Unlock()

	c.fire(notice{edited: true, redraw: true}, state, lang)
}

// Close stops pending highlight timers. Events handled after Close are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for _, h := range c.lights {
		h.stop()
	}
}
