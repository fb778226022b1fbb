package tabs

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
)

// Trigger is the ui-tabs-trigger behavior.
type Trigger struct {
	element.Base

	selected bool
}

func newTrigger(host *dom.Element) dom.Behavior {
	t := &Trigger{Base: element.New(host, element.SharedStyles())}
	host.AddEventListener("click", func(*dom.Event) { t.activate() })
	host.AddEventListener("keydown", func(ev *dom.Event) {
		if element.Activation(ev.Key()) {
			ev.PreventDefault()
			t.activate()
		}
	})
	return t
}

// ObservedAttributes implements dom.AttributeObserver.
func (t *Trigger) ObservedAttributes() []string {
	return []string{"value", "disabled"}
}

// AttributeChanged implements dom.AttributeObserver.
func (t *Trigger) AttributeChanged(string, string, string) {
	if !t.Host().IsConnected() {
		return
	}
	if root, ok := owner.Find[*Tabs](t.Host()); ok {
		root.push()
		return
	}
	t.reflect()
}

// Connected implements dom.Connector.
func (t *Trigger) Connected() {
	t.Host().SetAttr("role", "tab")
	if root, ok := owner.Find[*Tabs](t.Host()); ok {
		t.selected = root.Value() != "" && root.Value() == t.Key()
	} else {
		t.selected = false
	}
	if !t.Host().HasAttr("tabindex") {
		if t.selected {
			t.Host().SetTabIndex(0)
		} else {
			t.Host().SetTabIndex(-1)
		}
	}
	t.reflect()
}

// Update implements dom.Updater.
func (t *Trigger) Update() {
	t.Render(element.Slot())
}

// Key returns the trigger's value.
func (t *Trigger) Key() string { return t.Host().GetAttr("value") }

// Disabled reports whether the trigger is disabled.
func (t *Trigger) Disabled() bool { return t.Host().Disabled() }

// Selected reports whether the trigger's key is selected.
func (t *Trigger) Selected() bool { return t.selected }

// SetSelected implements selection.Item.
func (t *Trigger) SetSelected(selected bool) {
	t.selected = selected
	t.reflect()
}

func (t *Trigger) reflect() {
	host := t.Host()
	if t.selected {
		host.SetAttr("data-state", "active")
	} else {
		host.SetAttr("data-state", "inactive")
	}
	t.ReflectBool("aria-selected", t.selected)
	host.ToggleAttr("data-disabled", t.Disabled())
	t.RequestUpdate()
}

func (t *Trigger) activate() {
	if t.Disabled() {
		t.Logger().Debug("activation ignored", "reason", "disabled")
		return
	}
	selectIntent.Emit(t.Host(), t.Key())
}
