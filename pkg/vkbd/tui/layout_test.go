package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

func TestRenderLayout(t *testing.T) {
	tests := []struct {
		sel     layout.Selector
		want    []string
		notWant string
	}{
		{sel: layout.Selector{Language: layout.English}, want: []string{"q", "Backspace", "↑"}, notWant: "Q"},
		{sel: layout.Selector{Language: layout.English, Shifted: true}, want: []string{"Q", "~"}},
		{sel: layout.Selector{Language: layout.Russian}, want: []string{"й", "ё"}, notWant: "Й"},
		{sel: layout.Selector{Language: layout.Russian, Shifted: true}, want: []string{"Й", "№"}},
	}

	for _, tt := range tests {
		t.Run(tt.sel.String(), func(t *testing.T) {
			out := RenderLayout(nil, tt.sel)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			if tt.notWant != "" {
				assert.NotContains(t, out, tt.notWant)
			}
		})
	}
}
