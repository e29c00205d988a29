package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the browser.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	prev     key.Binding
	next     key.Binding
	search   key.Binding
	favorite key.Binding
	favsOnly key.Binding
	zoomIn   key.Binding
	zoomOut  key.Binding
	comment  key.Binding
	submit   key.Binding
	back     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		favsOnly: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "favorites only")),
		zoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		zoomOut:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		comment:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.prev, k.next, k.favorite, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.prev, k.next},
		{k.search, k.favorite, k.favsOnly},
		{k.zoomIn, k.zoomOut, k.comment, k.submit},
		{k.back, k.quit},
	}
}
