package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vango-dev/elements/pkg/dom"
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Click   key.Binding
	Finish  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next element")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous element")),
	Click:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "click")),
	Finish:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish transitions")),
	Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// domKeys maps terminal keys to the key values pressed on the selected
// element.
var domKeys = map[string]string{
	"enter": dom.KeyEnter,
	" ":     dom.KeySpace,
	"up":    dom.KeyArrowUp,
	"down":  dom.KeyArrowDown,
	"left":  dom.KeyArrowLeft,
	"right": dom.KeyArrowRight,
	"home":  dom.KeyHome,
	"end":   dom.KeyEnd,
}
