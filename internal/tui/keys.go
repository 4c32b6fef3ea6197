package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	toggle    key.Binding
	copy      key.Binding
	info      key.Binding
	viewTab   key.Binding
	setTab    key.Binding
	deleteTab key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	copy:      key.NewBinding(key.WithKeys("c")),
	info:      key.NewBinding(key.WithKeys("v")),
	viewTab:   key.NewBinding(key.WithKeys("1", "f1")),
	setTab:    key.NewBinding(key.WithKeys("2", "f2")),
	deleteTab: key.NewBinding(key.WithKeys("3", "f3")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
