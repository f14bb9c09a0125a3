package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up             key.Binding
	down           key.Binding
	left           key.Binding
	right          key.Binding
	enter          key.Binding
	esc            key.Binding
	tab            key.Binding
	backtab        key.Binding
	quit           key.Binding
	toggle         key.Binding
	delete         key.Binding
	clearCompleted key.Binding
	search         key.Binding
	nearMarket     key.Binding
	location       key.Binding
	reload         key.Binding
	copy           key.Binding
	add            key.Binding
	recipe         key.Binding
	suggest        key.Binding
	submit         key.Binding
	buildInfo      key.Binding
}

var keys = keyMap{
	up:             key.NewBinding(key.WithKeys("up", "k")),
	down:           key.NewBinding(key.WithKeys("down", "j")),
	left:           key.NewBinding(key.WithKeys("left")),
	right:          key.NewBinding(key.WithKeys("right")),
	enter:          key.NewBinding(key.WithKeys("enter")),
	esc:            key.NewBinding(key.WithKeys("esc")),
	tab:            key.NewBinding(key.WithKeys("tab")),
	backtab:        key.NewBinding(key.WithKeys("shift+tab")),
	quit:           key.NewBinding(key.WithKeys("q", "ctrl+c")),
	toggle:         key.NewBinding(key.WithKeys(" ")),
	delete:         key.NewBinding(key.WithKeys("d")),
	clearCompleted: key.NewBinding(key.WithKeys("C")),
	search:         key.NewBinding(key.WithKeys("/")),
	nearMarket:     key.NewBinding(key.WithKeys("m")),
	location:       key.NewBinding(key.WithKeys("L")),
	reload:         key.NewBinding(key.WithKeys("r")),
	copy:           key.NewBinding(key.WithKeys("y")),
	add:            key.NewBinding(key.WithKeys("a")),
	recipe:         key.NewBinding(key.WithKeys("i")),
	suggest:        key.NewBinding(key.WithKeys("ctrl+g")),
	submit:         key.NewBinding(key.WithKeys("ctrl+s")),
	buildInfo:      key.NewBinding(key.WithKeys("v")),
}
