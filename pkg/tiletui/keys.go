package tiletui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo's key bindings and doubles as a bubbles/help
// KeyMap so the status bar can render them without duplicating labels.
type keyMap struct {
	North        key.Binding
	South        key.Binding
	East         key.Binding
	West         key.Binding
	NextLayout   key.Binding
	PrevLayout   key.Binding
	MoreWindows  key.Binding
	FewerWindows key.Binding
	Rotate       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		North: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select north neighbor"),
		),
		South: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select south neighbor"),
		),
		East: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "select east neighbor"),
		),
		West: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "select west neighbor"),
		),
		NextLayout: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next layout"),
		),
		PrevLayout: key.NewBinding(
			key.WithKeys("p", "shift+tab"),
			key.WithHelp("p", "previous layout"),
		),
		MoreWindows: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add a window"),
		),
		FewerWindows: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "remove a window"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate layout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.South, k.East, k.West, k.NextLayout, k.Rotate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.East, k.West},
		{k.NextLayout, k.PrevLayout, k.MoreWindows, k.FewerWindows},
		{k.Rotate, k.Help, k.Quit},
	}
}
