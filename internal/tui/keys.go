package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reset   key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Clear   key.Binding
	Table   key.Binding
	Export  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Pause:   key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "pan")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
		Faster:  key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "batch")),
		Slower:  key.NewBinding(key.WithKeys("[")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Table:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transforms")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "more help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.ZoomIn, k.Up, k.Faster, k.Table, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Faster, k.Clear},
		{k.ZoomIn, k.Up, k.Reset},
		{k.Table, k.Export, k.Help, k.Quit},
	}
}
