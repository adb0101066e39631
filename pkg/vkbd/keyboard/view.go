package keyboard

import (
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/editor"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/modifier"
)

// KeyView is one key as a render surface should draw it.
type KeyView struct {
	ID        layout.KeyID
	Glyph     string
	Width     float64
	Printable bool
	// Active is the short-lived highlight after activation.
	Active bool
	// Locked marks an engaged modifier: Caps Lock, Shift, or a latched Ctrl/Alt.
	Locked bool
}

// View is a snapshot of everything a render surface needs.
type View struct {
	Rows      [][]KeyView
	Modifiers modifier.State
	Text      editor.State
}

// View renders the active key map. Caps lock case folding is applied here on every call, so
// it survives any language or shift change.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	mods := c.mods.State()
	rows := layout.Rows()

	v := View{
		Rows:      make([][]KeyView, len(rows)),
		Modifiers: mods,
		Text:      c.text,
	}

	for r, row := range rows {
		keys := make([]KeyView, 0, len(row))
		for _, id := range row {
			glyph, err := c.mods.DisplayGlyph(id)
			if err != nil {
				c.logger.Error("Failed to resolve glyph", "key", id, "error", err)
				continue
			}
			keys = append(keys, KeyView{
				ID:        id,
				Glyph:     glyph,
				Width:     layout.Width(id),
				Printable: layout.IsPrintable(id),
				Active:    c.lights[id].lit.Load(),
				Locked:    c.locked(id, mods),
			})
		}
		v.Rows[r] = keys
	}

	return v
}

func (c *Controller) locked(id layout.KeyID, mods modifier.State) bool {
	switch layout.ActionFor(id).Kind {
	case layout.ActionCapsLock:
		return mods.CapsLockActive
	case layout.ActionShift:
		return mods.ShiftActive
	case layout.ActionCtrl:
		return c.chord.ctrlLatched
	case layout.ActionAlt:
		return c.chord.altLatched
	}
	return false
}

// Key returns the view of a single key.
func (v View) Key(id layout.KeyID) (KeyView, bool) {
	for _, row := range v.Rows {
		for _, k := range row {
			if k.ID == id {
				return k, true
			}
		}
	}
	return KeyView{}, false
}

// Glyphs flattens the view to a key -> displayed glyph map.
func (v View) Glyphs() map[layout.KeyID]string {
	out := make(map[layout.KeyID]string)
	for _, row := range v.Rows {
		for _, k := range row {
			out[k.ID] = k.Glyph
		}
	}
	return out
}
