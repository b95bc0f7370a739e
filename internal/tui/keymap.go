package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap collects every binding so bubbles/help can render them. ToggleAll
// and ClearDone get enabled/disabled from the current state: with no todos
// at all both controls disappear from the help line.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Delete    key.Binding
	ClearDone key.Binding
	Filter    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		ToggleAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "toggle all")),
		Delete:    key.NewBinding(key.WithKeys("d", "backspace"), key.WithHelp("d", "delete")),
		ClearDone: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear done")),
		Filter:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/1-3", "filter")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Delete, k.Filter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter},
		{k.Add, k.Edit, k.Toggle, k.Delete},
		{k.ToggleAll, k.ClearDone, k.Quit},
	}
}
