// Package toggle implements ui-toggle, a two-state button.
package toggle

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/state"
	"github.com/vango-dev/elements/pkg/style"
)

// Tag is the element tag.
const Tag = "ui-toggle"

// EventPressedChange is dispatched when interaction requests a new pressed
// state.
const EventPressedChange = "pressed-change"

// PressedChange is the detail of pressed-change events.
type PressedChange struct {
	Pressed bool `json:"pressed"`
}

var classes = style.Variants{
	Base: "inline-flex items-center justify-center rounded-md text-sm font-medium ring-offset-background transition-colors hover:bg-muted hover:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50 data-[state=on]:bg-accent data-[state=on]:text-accent-foreground",
	Variants: map[string]map[string]string{
		"variant": {
			"default": "bg-transparent",
			"outline": "border border-input bg-transparent hover:bg-accent hover:text-accent-foreground",
		},
		"size": {
			"default": "h-10 px-3",
			"sm":      "h-9 px-2.5",
			"lg":      "h-11 px-5",
		},
	},
	Defaults: map[string]string{"variant": "default", "size": "default"},
}

// Toggle is the ui-toggle behavior.
type Toggle struct {
	element.Base

	pressed   state.Cell[bool]
	internals *dom.Internals
}

func newToggle(host *dom.Element) dom.Behavior {
	t := &Toggle{
		Base:      element.New(host, element.SharedStyles()),
		internals: host.AttachInternals(),
	}
	host.AddEventListener("click", func(*dom.Event) { t.Toggle() })
	host.AddEventListener("keydown", func(ev *dom.Event) {
		if element.Activation(ev.Key()) {
			ev.PreventDefault()
			t.Toggle()
		}
	})
	return t
}

// ObservedAttributes implements dom.AttributeObserver.
func (t *Toggle) ObservedAttributes() []string {
	return []string{"pressed", "default-pressed", "disabled", "value", "variant", "size"}
}

// AttributeChanged implements dom.AttributeObserver.
func (t *Toggle) AttributeChanged(name, _, _ string) {
	host := t.Host()
	switch name {
	case "pressed":
		if host.HasAttr("pressed") {
			t.pressed.SetControlled(host.BoolAttr("pressed"))
		} else {
			t.pressed.ClearControlled()
		}
	case "default-pressed":
		t.pressed.SetFallback(host.BoolAttr("default-pressed"))
	}
	t.sync()
}

// Connected implements dom.Connector.
func (t *Toggle) Connected() {
	host := t.Host()
	host.SetAttr("role", "button")
	if !host.HasAttr("tabindex") {
		host.SetTabIndex(0)
	}
	t.sync()
}

// Update implements dom.Updater.
func (t *Toggle) Update() {
	host := t.Host()
	cls := classes.Resolve(map[string]string{
		"variant": host.GetAttr("variant"),
		"size":    host.GetAttr("size"),
	})
	t.Render(dom.H("span", map[string]string{"part": "toggle", "class": cls}, element.Slot()))
}

// Pressed returns the authoritative pressed state.
func (t *Toggle) Pressed() bool { return t.pressed.Read() }

// Disabled reports whether the toggle is disabled.
func (t *Toggle) Disabled() bool { return t.Host().Disabled() }

// Toggle applies a user activation.
func (t *Toggle) Toggle() {
	if t.Disabled() {
		t.Logger().Debug("toggle ignored", "reason", "disabled")
		return
	}
	state.RequestToggle(&t.pressed, false, func(next bool) {
		t.Emit(EventPressedChange, PressedChange{Pressed: next})
	})
	t.sync()
}

// FormReset implements dom.FormResetter.
func (t *Toggle) FormReset() {
	t.pressed.SetFallback(t.Host().BoolAttr("default-pressed"))
	t.sync()
}

func (t *Toggle) sync() {
	host := t.Host()
	pressed := t.Pressed()
	if pressed {
		host.SetAttr("data-state", "on")
	} else {
		host.SetAttr("data-state", "off")
	}
	t.ReflectBool("aria-pressed", pressed)
	host.ToggleAttr("data-disabled", t.Disabled())

	if pressed {
		value := host.GetAttr("value")
		if value == "" {
			value = "on"
		}
		t.internals.SetFormValue(value)
	} else {
		t.internals.ClearFormValue()
	}
	t.RequestUpdate()
}
