package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

// RenderLayout draws one of the four key maps without a controller, for listing layouts.
func RenderLayout(theme *Theme, sel layout.Selector) string {
	if theme == nil {
		theme = NewTheme("")
	}

	m := layout.Resolve(sel)
	var rows [][]keyboard.KeyView
	for _, row := range layout.Rows() {
		keys := make([]keyboard.KeyView, 0, len(row))
		for _, id := range row {
			keys = append(keys, keyboard.KeyView{
				ID:        id,
				Glyph:     m[id],
				Width:     layout.Width(id),
				Printable: layout.IsPrintable(id),
				Locked:    sel.Shifted && layout.ActionFor(id).Kind == layout.ActionShift,
			})
		}
		rows = append(rows, keys)
	}

	return renderRows(theme, rows)
}

func renderRows(theme *Theme, rows [][]keyboard.KeyView) string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			cells = append(cells, keyStyle(theme, k).Width(int(k.Width*keyUnit)).Render(k.Glyph))
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func keyStyle(theme *Theme, k keyboard.KeyView) lipgloss.Style {
	switch {
	case k.Active:
		return theme.KeyActive
	case k.Locked:
		return theme.KeyLocked
	case !k.Printable:
		return theme.KeyModKey
	default:
		return theme.Key
	}
}
