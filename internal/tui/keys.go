package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	ToList    key.Binding
	ToInput   key.Binding
	Up        key.Binding
	Down      key.Binding
	Complete  key.Binding
	Undo      key.Binding
	Delete    key.Binding
	Reload    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	inputFocused bool
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		ToList: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "tasks"),
		),
		ToInput: key.NewBinding(
			key.WithKeys("tab", "i"),
			key.WithHelp("tab", "new task"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Complete: key.NewBinding(
			key.WithKeys(" ", "d"),
			key.WithHelp("space", "done"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the focused area.
func (k keyMap) ShortHelp() []key.Binding {
	if k.inputFocused {
		return []key.Binding{k.Submit, k.ToList, k.ForceQuit}
	}
	return []key.Binding{k.Complete, k.Undo, k.Delete, k.Reload, k.ToInput, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.ToList, k.ToInput},
		{k.Up, k.Down, k.Complete, k.Undo, k.Delete},
		{k.Reload, k.Quit, k.ForceQuit},
	}
}
