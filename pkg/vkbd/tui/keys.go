package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Language key.Binding
	CapsLock key.Binding
	Left     key.Binding
	Right    key.Binding
	Help     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Language, k.CapsLock, k.Confirm, k.Cancel, k.Help}
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Language, k.CapsLock},
		{k.Left, k.Right},
		{k.Confirm, k.Cancel, k.Help},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Language: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "ctrl+alt (language)"),
		),
		CapsLock: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "caps lock"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "ctrl+b"),
			key.WithHelp("←", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "ctrl+f"),
			key.WithHelp("→", "cursor right"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
