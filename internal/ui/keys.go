package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Jump     key.Binding
	Expand   key.Binding
	Home     key.Binding
	Menu     key.Binding
	Up       key.Binding
	Down     key.Binding
	Choose   key.Binding
	Back     key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev section")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next section")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to tab")),
		Expand:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "full screen")),
		Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "home")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ScrollUp: key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
		ScrollDn: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll down")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Menu, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump, k.Expand, k.Home},
		{k.Menu, k.Up, k.Down, k.Choose, k.Back},
		{k.ScrollUp, k.ScrollDn, k.Theme, k.Help, k.Quit},
	}
}
