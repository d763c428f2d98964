package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pull       key.Binding
	Stop       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Top        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pull:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "pull to refresh")),
		Stop:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "finish refresh")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "scroll")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "jump to top")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pull, k.ScrollDown, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pull, k.Stop},
		{k.ScrollDown, k.Top, k.Help, k.Quit},
	}
}
