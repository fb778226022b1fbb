// Package collapsible implements a disclosure widget: a ui-collapsible owner
// holding the open state, ui-collapsible-trigger elements that toggle it, and
// ui-collapsible-content elements that animate between open and closed.
//
//	<ui-collapsible default-open>
//	  <ui-collapsible-trigger>Details</ui-collapsible-trigger>
//	  <ui-collapsible-content>...</ui-collapsible-content>
//	</ui-collapsible>
package collapsible

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
	"github.com/vango-dev/elements/pkg/state"
)

// Tags.
const (
	TagRoot    = "ui-collapsible"
	TagTrigger = "ui-collapsible-trigger"
	TagContent = "ui-collapsible-content"
)

// EventOpenChange is dispatched by the root when interaction requests a new
// open state.
const EventOpenChange = "open-change"

// OpenChange is the detail of open-change events.
type OpenChange struct {
	Open bool `json:"open"`
}

// toggleIntent is raised by triggers.
var toggleIntent = owner.NewIntent[struct{}]("collapsible-toggle")

// Snapshot is the state a root publishes to its descendants.
type Snapshot struct {
	Open     bool
	Disabled bool
}

// Collapsible is the ui-collapsible behavior.
type Collapsible struct {
	element.Base

	open       state.Cell[bool]
	interacted bool
	topic      owner.Topic[Snapshot]
}

func newCollapsible(host *dom.Element) dom.Behavior {
	c := &Collapsible{Base: element.New(host, element.SharedStyles())}
	toggleIntent.Listen(host, func(from *dom.Element, _ struct{}) { c.toggle(from) })
	return c
}

// ObservedAttributes implements dom.AttributeObserver.
func (c *Collapsible) ObservedAttributes() []string {
	return []string{"open", "default-open", "disabled"}
}

// AttributeChanged implements dom.AttributeObserver.
func (c *Collapsible) AttributeChanged(name, _, _ string) {
	host := c.Host()
	switch name {
	case "open":
		if host.HasAttr("open") {
			c.open.SetControlled(host.BoolAttr("open"))
		} else {
			c.open.ClearControlled()
		}
	case "default-open":
		if !c.interacted {
			c.open.SetFallback(host.BoolAttr("default-open"))
		}
	}
	c.sync()
}

// Connected implements dom.Connector.
func (c *Collapsible) Connected() {
	c.sync()
}

// Update implements dom.Updater.
func (c *Collapsible) Update() {
	c.Render(element.Slot())
}

// Open reports the authoritative open state.
func (c *Collapsible) Open() bool { return c.open.Read() }

// Disabled reports whether interaction is disabled.
func (c *Collapsible) Disabled() bool { return c.Host().Disabled() }

// Snapshot returns the state descendants render from.
func (c *Collapsible) Snapshot() Snapshot {
	return Snapshot{Open: c.Open(), Disabled: c.Disabled()}
}

// Subscribe registers fn for state changes.
func (c *Collapsible) Subscribe(fn func(Snapshot)) func() {
	return c.topic.Subscribe(fn)
}

// Toggle requests the opposite open state, as a trigger activation does.
// While disabled nothing happens.
func (c *Collapsible) Toggle() {
	c.toggle(nil)
}

func (c *Collapsible) toggle(from *dom.Element) {
	if from != nil && from.Disabled() {
		c.Logger().Debug("toggle ignored", "reason", "disabled trigger")
		return
	}
	if c.Disabled() {
		c.Logger().Debug("toggle ignored", "reason", "disabled")
		return
	}
	c.interacted = true
	state.RequestToggle(&c.open, false, func(next bool) {
		c.Emit(EventOpenChange, OpenChange{Open: next})
	})
	c.sync()
}

// sync reflects the owner's own state first, then pushes it to descendants.
func (c *Collapsible) sync() {
	snap := c.Snapshot()
	c.Reflect("data-state", openState(snap.Open))
	c.Host().ToggleAttr("data-disabled", snap.Disabled)
	c.RequestUpdate()
	c.topic.Publish(snap)
}

func openState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
