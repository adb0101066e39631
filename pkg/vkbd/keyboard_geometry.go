package vkbd

import (
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/veandco/go-sdl2/sdl"
)

type keyCell struct {
	id   layout.KeyID
	rect sdl.Rect
}

// keyGeometry places the text box and every key of the physical rows on screen. Key widths
// come from the layout's width classes, scaled so the widest row fills the keyboard area.
type keyGeometry struct {
	textInput sdl.Rect
	keyboard  sdl.Rect
	rows      [][]keyCell
	rects     map[layout.KeyID]sdl.Rect
	footerY   int32
	keySpace  int32
}

func newKeyGeometry(windowWidth, windowHeight int32) keyGeometry {
	g := keyGeometry{keySpace: max(windowWidth/200, 3)}

	textInputHeight := windowHeight / 10
	textInputWidth := (windowWidth * 85) / 100
	g.textInput = sdl.Rect{
		X: (windowWidth - textInputWidth) / 2,
		Y: windowHeight / 20,
		W: textInputWidth,
		H: textInputHeight,
	}

	footerHeight := windowHeight / 12
	g.footerY = windowHeight - footerHeight

	top := g.textInput.Y + g.textInput.H + windowHeight/25
	keyboardWidth := (windowWidth * 95) / 100
	g.keyboard = sdl.Rect{
		X: (windowWidth - keyboardWidth) / 2,
		Y: top,
		W: keyboardWidth,
		H: g.footerY - top - windowHeight/40,
	}

	rows := layout.Rows()
	var widest float64
	for _, row := range rows {
		var units float64
		for _, id := range row {
			units += layout.Width(id)
		}
		widest = max(widest, units)
	}

	unit := float64(g.keyboard.W) / widest
	keyHeight := (g.keyboard.H - g.keySpace*int32(len(rows)-1)) / int32(len(rows))

	g.rows = make([][]keyCell, len(rows))
	g.rects = make(map[layout.KeyID]sdl.Rect)
	for r, row := range rows {
		var rowUnits float64
		for _, id := range row {
			rowUnits += layout.Width(id)
		}

		x := float64(g.keyboard.X) + (float64(g.keyboard.W)-rowUnits*unit)/2
		y := g.keyboard.Y + int32(r)*(keyHeight+g.keySpace)

		cells := make([]keyCell, len(row))
		for c, id := range row {
			w := layout.Width(id) * unit
			cells[c] = keyCell{
				id: id,
				rect: sdl.Rect{
					X: int32(x),
					Y: y,
					W: int32(w) - g.keySpace,
					H: keyHeight,
				},
			}
			g.rects[id] = cells[c].rect
			x += w
		}
		g.rows[r] = cells
	}

	return g
}

func (g keyGeometry) rect(id layout.KeyID) (sdl.Rect, bool) {
	rect, ok := g.rects[id]
	return rect, ok
}

// moveHorizontal wraps around the row.
func (g keyGeometry) moveHorizontal(row, col, direction int) int {
	n := len(g.rows[row])
	return ((col+direction)%n + n) % n
}

// moveVertical wraps around the rows and lands on the key whose center is closest to the
// current key's center.
func (g keyGeometry) moveVertical(row, col, direction int) (int, int) {
	current := g.rows[row][col].rect
	centerX := current.X + current.W/2

	n := len(g.rows)
	newRow := ((row+direction)%n + n) % n

	best, bestDistance := 0, int32(-1)
	for c, cell := range g.rows[newRow] {
		distance := cell.rect.X + cell.rect.W/2 - centerX
		if distance < 0 {
			distance = -distance
		}
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = c, distance
		}
	}

	return newRow, best
}

func (g keyGeometry) hit(p sdl.Point) (int, int, bool) {
	for r, row := range g.rows {
		for c, cell := range row {
			if p.InRect(&cell.rect) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
