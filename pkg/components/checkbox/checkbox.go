// Package checkbox implements ui-checkbox, a form-associated control that
// toggles between checked and unchecked, with an indeterminate state that
// can only be set from outside.
package checkbox

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
	"github.com/vango-dev/elements/pkg/state"
)

// Tag is the element tag.
const Tag = "ui-checkbox"

// EventCheckedChange is dispatched when interaction requests a new checked
// state.
const EventCheckedChange = "checked-change"

// CheckedChange is the detail of checked-change events.
type CheckedChange struct {
	Checked       bool `json:"checked"`
	Indeterminate bool `json:"indeterminate"`
}

// Checkbox is the ui-checkbox behavior.
type Checkbox struct {
	element.Base

	checked       state.Cell[bool]
	indeterminate bool
	internals     *dom.Internals
	labels        *owner.LabelDelegate
}

func newCheckbox(host *dom.Element) dom.Behavior {
	c := &Checkbox{
		Base:      element.New(host, element.SharedStyles()),
		internals: host.AttachInternals(),
	}
	c.labels = owner.NewLabelDelegate(host, c.Toggle)
	host.AddEventListener("click", func(*dom.Event) { c.Toggle() })
	host.AddEventListener("keydown", func(ev *dom.Event) {
		switch ev.Key() {
		case dom.KeySpace:
			ev.PreventDefault()
			c.Toggle()
		case dom.KeyEnter:
			// Checkboxes do not activate on Enter.
			ev.PreventDefault()
		}
	})
	return c
}

// ObservedAttributes implements dom.AttributeObserver.
func (c *Checkbox) ObservedAttributes() []string {
	return []string{"checked", "default-checked", "indeterminate", "disabled", "required", "value", "id"}
}

// AttributeChanged implements dom.AttributeObserver.
func (c *Checkbox) AttributeChanged(name, _, _ string) {
	host := c.Host()
	switch name {
	case "checked":
		if host.HasAttr("checked") {
			c.checked.SetControlled(host.BoolAttr("checked"))
		} else {
			c.checked.ClearControlled()
		}
	case "default-checked":
		c.checked.SetFallback(host.BoolAttr("default-checked"))
	case "indeterminate":
		c.indeterminate = host.BoolAttr("indeterminate")
	case "id":
		c.labels.IDChanged()
	}
	c.sync()
}

// Connected implements dom.Connector.
func (c *Checkbox) Connected() {
	host := c.Host()
	host.SetAttr("role", "checkbox")
	if !host.HasAttr("tabindex") {
		host.SetTabIndex(0)
	}
	c.labels.Attach()
	c.sync()
}

// Disconnected implements dom.Disconnector.
func (c *Checkbox) Disconnected() {
	c.labels.Detach()
}

// Update implements dom.Updater.
func (c *Checkbox) Update() {
	indicator := dom.H("span", map[string]string{"part": "indicator", "data-state": c.dataState()})
	c.Render(indicator, element.Slot())
}

// Checked returns the authoritative checked state.
func (c *Checkbox) Checked() bool { return c.checked.Read() }

// Indeterminate reports whether the checkbox is indeterminate.
func (c *Checkbox) Indeterminate() bool { return c.indeterminate }

// Disabled reports whether the checkbox is disabled.
func (c *Checkbox) Disabled() bool { return c.Host().Disabled() }

// Toggle applies a user activation. An indeterminate checkbox becomes
// checked. While disabled nothing happens.
func (c *Checkbox) Toggle() {
	if c.Disabled() {
		c.Logger().Debug("toggle ignored", "reason", "disabled")
		return
	}
	emit := func(next bool) {
		c.Emit(EventCheckedChange, CheckedChange{Checked: next})
	}
	if c.indeterminate {
		if !c.checked.Controlled() {
			c.indeterminate = false
		}
		c.checked.Request(true, emit)
	} else {
		state.RequestToggle(&c.checked, false, emit)
	}
	c.sync()
}

// FormReset implements dom.FormResetter.
func (c *Checkbox) FormReset() {
	c.checked.SetFallback(c.Host().BoolAttr("default-checked"))
	c.indeterminate = c.Host().BoolAttr("indeterminate")
	c.sync()
}

func (c *Checkbox) dataState() string {
	switch {
	case c.indeterminate:
		return "indeterminate"
	case c.Checked():
		return "checked"
	default:
		return "unchecked"
	}
}

// sync reflects the state and publishes the form value.
func (c *Checkbox) sync() {
	host := c.Host()
	checked := c.Checked()

	host.SetAttr("data-state", c.dataState())
	if c.indeterminate {
		host.SetAttr("aria-checked", "mixed")
	} else {
		c.ReflectBool("aria-checked", checked)
	}
	host.ToggleAttr("data-disabled", c.Disabled())
	if host.BoolAttr("required") {
		host.SetAttr("aria-required", "true")
		c.ReflectBool("aria-invalid", !checked)
	} else {
		host.RemoveAttr("aria-required")
		host.RemoveAttr("aria-invalid")
	}

	if checked {
		value := host.GetAttr("value")
		if value == "" {
			value = "on"
		}
		c.internals.SetFormValue(value)
	} else {
		c.internals.ClearFormValue()
	}
	c.RequestUpdate()
}
