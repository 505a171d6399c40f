package table

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the navigation key bindings.
type KeyMap struct {
	NextCell, PrevCell    key.Binding
	Left, Right, Up, Down key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextCell: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		PrevCell: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cell left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cell right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "cell up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "cell down")),
	}
}
