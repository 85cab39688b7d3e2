package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	run     key.Binding
	halt    key.Binding
	ingest  key.Binding
	save    key.Binding
	trash   key.Binding
	deleteK key.Binding
	cycle   key.Binding
	toggle  key.Binding
	back    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run the main loop"),
		),
		halt: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "halt process"),
		),
		ingest: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "process a URL"),
		),
		save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save item"),
		),
		trash: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trash item"),
		),
		deleteK: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete saved item"),
		),
		cycle: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "cycle time limit"),
		),
		toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "feed/saved"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.run, k.toggle, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.run, k.halt},
		{k.ingest, k.save, k.trash, k.deleteK},
		{k.cycle, k.toggle, k.back, k.quit},
	}
}
