package collapsible

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
)

// Trigger is the ui-collapsible-trigger behavior.
type Trigger struct {
	element.Base

	snap  Snapshot
	owned bool
	unsub func()
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

// Connected implements dom.Connector.
func (t *Trigger) Connected() {
	host := t.Host()
	host.SetAttr("role", "button")
	if !host.HasAttr("tabindex") {
		host.SetTabIndex(0)
	}

	root, ok := owner.Find[*Collapsible](host)
	t.owned = ok
	if ok {
		t.snap = root.Snapshot()
		t.unsub = root.Subscribe(t.receive)
	}
	t.sync()
}

// Disconnected implements dom.Disconnector.
func (t *Trigger) Disconnected() {
	if t.unsub != nil {
		t.unsub()
		t.unsub = nil
	}
	t.owned = false
}

// Update implements dom.Updater.
func (t *Trigger) Update() {
	t.Render(element.Slot())
}

func (t *Trigger) receive(s Snapshot) {
	t.snap = s
	t.sync()
}

func (t *Trigger) sync() {
	host := t.Host()
	if !t.owned {
		// Standalone triggers control nothing.
		host.RemoveAttr("aria-expanded")
		t.Reflect("data-state", "")
		host.ToggleAttr("data-disabled", host.Disabled())
		t.RequestUpdate()
		return
	}
	t.ReflectBool("aria-expanded", t.snap.Open)
	t.Reflect("data-state", openState(t.snap.Open))
	host.ToggleAttr("data-disabled", t.disabled())
	t.RequestUpdate()
}

func (t *Trigger) disabled() bool {
	return t.Host().Disabled() || t.snap.Disabled
}

func (t *Trigger) activate() {
	if t.disabled() {
		t.Logger().Debug("activation ignored", "reason", "disabled")
		return
	}
	toggleIntent.Emit(t.Host(), struct{}{})
}
