package ui

import "github.com/charmbracelet/bubbles/key"

const spacebar = " "

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	reshuffle key.Binding
	add       key.Binding
	toggle    key.Binding
	save      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		reshuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
		add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to repertoire")),
		toggle:    key.NewBinding(key.WithKeys(spacebar), key.WithHelp("space", "start/pause")),
		save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop & save")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.reshuffle, k.add},
		{k.toggle, k.save, k.quit},
	}
}
