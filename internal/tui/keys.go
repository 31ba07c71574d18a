package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Disabled  key.Binding
	Bold      key.Binding
	Underline key.Binding
	Header    key.Binding
	NextSize  key.Binding
	PrevSize  key.Binding
	Purge     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Disabled: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disabled"),
		),
		Bold: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bold"),
		),
		Underline: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "underline"),
		),
		Header: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "heading/paragraph"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "next size"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←", "previous size"),
		),
		Purge: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "purge cache"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Disabled, k.Bold, k.Underline, k.Header, k.NextSize, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Disabled, k.Bold, k.Underline, k.Header},
		{k.NextSize, k.PrevSize, k.Purge, k.Quit},
	}
}
