package tui

import "github.com/charmbracelet/bubbles/key"

// browserKeys are the key bindings for the shelf browser.
type browserKeys struct {
	Quit       key.Binding
	NextShelf  key.Binding
	PrevShelf  key.Binding
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Search     key.Binding
	ToggleView key.Binding
	MoveWant   key.Binding
	MoveRead   key.Binding
	MoveDone   key.Binding
	SortTitle  key.Binding
	SortAuthor key.Binding
	SortSeries key.Binding
	SortRating key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextShelf: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next shelf"),
		),
		PrevShelf: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev shelf"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search catalog"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "full/compact"),
		),
		MoveWant: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "→ Want to Read"),
		),
		MoveRead: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "→ Currently Reading"),
		),
		MoveDone: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "→ Read"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort title"),
		),
		SortAuthor: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "sort author"),
		),
		SortSeries: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "sort series"),
		),
		SortRating: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "sort rating"),
		),
	}
}
