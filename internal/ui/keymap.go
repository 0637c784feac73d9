package ui

import "github.com/charmbracelet/bubbles/key"

// keymap declares every binding the controller understands. The keybinds
// modal is generated from the help text, so the two cannot drift apart.
type keymap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Escape  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "navigate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "navigate down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "focus menu"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "run item (in menu)"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run item (in menu), activate (in content)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit modal (in modal), focus menu (in content)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle the keybinds modal"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
	}
}

// helpOrder returns the bindings in the order the modal lists them.
func (k keymap) helpOrder() []key.Binding {
	return []key.Binding{k.Help, k.Escape, k.Left, k.Right, k.Up, k.Down, k.Enter, k.Quit}
}
