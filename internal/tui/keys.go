package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the tabbed screens.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Claim      key.Binding
	Unclaim    key.Binding
	Reassign   key.Binding
	Resolve    key.Binding
	Reopen     key.Binding
	Note       key.Binding
	New        key.Binding
	Delete     key.Binding
	Convert    key.Binding
	Mine       key.Binding
	SwitchUser key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Claim:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "claim")),
		Unclaim:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unclaim")),
		Reassign:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reassign")),
		Resolve:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "resolve")),
		Reopen:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "mark open")),
		Note:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add note")),
		New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Convert:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "to article")),
		Mine:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my items")),
		SwitchUser: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "switch user")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
