// Package input implements ui-input, a single-line text field that takes
// part in form submission.
package input

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/state"
	"github.com/vango-dev/elements/pkg/style"
)

// Tag is the element tag.
const Tag = "ui-input"

// EventValueChange is dispatched when the user edits the value.
const EventValueChange = "value-change"

// ValueChange is the detail of value-change events.
type ValueChange struct {
	Value string `json:"value"`
}

const classes = "flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-sm ring-offset-background file:border-0 file:bg-transparent file:text-sm file:font-medium placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50"

// Input is the ui-input behavior.
type Input struct {
	element.Base

	value     state.Cell[string]
	internals *dom.Internals
}

func newInput(host *dom.Element) dom.Behavior {
	in := &Input{
		Base:      element.New(host, element.SharedStyles()),
		internals: host.AttachInternals(),
	}
	host.AddEventListener("input", func(ev *dom.Event) {
		if ie, ok := ev.Detail.(dom.InputEvent); ok {
			in.Edit(ie.Value)
		}
	})
	return in
}

// ObservedAttributes implements dom.AttributeObserver.
func (in *Input) ObservedAttributes() []string {
	return []string{"value", "default-value", "disabled", "readonly", "placeholder", "type", "class"}
}

// AttributeChanged implements dom.AttributeObserver.
func (in *Input) AttributeChanged(name, _, value string) {
	switch name {
	case "value":
		if in.Host().HasAttr("value") {
			in.value.SetControlled(value)
		} else {
			in.value.ClearControlled()
		}
	case "default-value":
		in.value.SetFallback(value)
	}
	in.sync()
}

// Connected implements dom.Connector.
func (in *Input) Connected() {
	host := in.Host()
	host.SetAttr("role", "textbox")
	if !host.HasAttr("tabindex") {
		host.SetTabIndex(0)
	}
	in.sync()
}

// Update implements dom.Updater.
func (in *Input) Update() {
	host := in.Host()
	attrs := map[string]string{
		"part":  "input",
		"class": style.CN(classes, host.GetAttr("class")),
		"type":  in.Type(),
		"value": in.Value(),
	}
	if p := host.GetAttr("placeholder"); p != "" {
		attrs["placeholder"] = p
	}
	if in.Disabled() {
		attrs["disabled"] = ""
	}
	if host.BoolAttr("readonly") {
		attrs["readonly"] = ""
	}
	in.Render(dom.H("input", attrs))
}

// Value returns the authoritative value.
func (in *Input) Value() string { return in.value.Read() }

// Type returns the input type, text by default.
func (in *Input) Type() string {
	if t := in.Host().GetAttr("type"); t != "" {
		return t
	}
	return "text"
}

// Disabled reports whether the input is disabled.
func (in *Input) Disabled() bool { return in.Host().Disabled() }

// Edit applies a user edit. Disabled and read-only inputs ignore it, as does
// an edit that leaves the value unchanged.
func (in *Input) Edit(value string) {
	if in.Disabled() || in.Host().BoolAttr("readonly") {
		in.Logger().Debug("edit ignored", "reason", "not editable")
		return
	}
	if value == in.Value() {
		return
	}
	in.value.Request(value, func(next string) {
		in.Emit(EventValueChange, ValueChange{Value: next})
	})
	in.sync()
}

// FormReset implements dom.FormResetter.
func (in *Input) FormReset() {
	in.value.SetFallback(in.Host().GetAttr("default-value"))
	in.sync()
}

func (in *Input) sync() {
	host := in.Host()
	host.ToggleAttr("data-disabled", in.Disabled())
	if host.BoolAttr("readonly") {
		host.SetAttr("aria-readonly", "true")
	} else {
		host.RemoveAttr("aria-readonly")
	}
	in.internals.SetFormValue(in.Value())
	in.RequestUpdate()
}
