package components

import "charm.land/bubbles/v2/key"

// NavKeys are the bindings shared by vertical lists.
type NavKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultNavKeys returns arrow/vim navigation with Enter to select.
func DefaultNavKeys() NavKeys {
	return NavKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
	}
}
