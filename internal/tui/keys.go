package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Views
	Gallery    key.Binding
	List       key.Binding
	SwitchView key.Binding

	// Browsing
	Search     key.Binding
	Sort       key.Binding
	Categories key.Binding
	Open       key.Binding

	// Detail
	Prev key.Binding
	Next key.Binding
	Back key.Binding

	// Actions
	OpenImage key.Binding
	OpenPage  key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Gallery: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "gallery"),
		),
		List: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "list"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch view"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Categories: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "categories"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),

		Prev: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("h/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("l/→", "next"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "backspace"),
			key.WithHelp("esc", "back"),
		),

		OpenImage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		OpenPage: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "web page"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchView, k.Search, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Gallery, k.List, k.SwitchView, k.Reload},
		{k.Search, k.Sort, k.Categories, k.Open},
		{k.Prev, k.Next, k.Back},
		{k.OpenImage, k.OpenPage, k.Help, k.Quit},
	}
}

// routeHelp returns the short help shown in the footer for a route
func (k KeyMap) routeHelp(kind RouteKind) []key.Binding {
	switch kind {
	case RouteList:
		return []key.Binding{k.Search, k.Sort, k.Open, k.SwitchView, k.Help}
	case RouteArtwork:
		return []key.Binding{k.Prev, k.Next, k.Back, k.OpenImage, k.OpenPage}
	default:
		return []key.Binding{k.Categories, k.Open, k.SwitchView, k.Help}
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
