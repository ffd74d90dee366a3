package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	refresh   key.Binding
	copy      key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	version:   key.NewBinding(key.WithKeys("v")),
}
