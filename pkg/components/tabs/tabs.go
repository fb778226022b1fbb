// Package tabs implements a tabbed interface: a ui-tabs owner holding the
// selected key, a ui-tabs-list providing keyboard navigation, ui-tabs-trigger
// elements that request selection, and ui-tabs-content panels shown for the
// selected key.
//
//	<ui-tabs default-value="account">
//	  <ui-tabs-list>
//	    <ui-tabs-trigger value="account">Account</ui-tabs-trigger>
//	    <ui-tabs-trigger value="password">Password</ui-tabs-trigger>
//	  </ui-tabs-list>
//	  <ui-tabs-content value="account">...</ui-tabs-content>
//	  <ui-tabs-content value="password">...</ui-tabs-content>
//	</ui-tabs>
package tabs

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
	"github.com/vango-dev/elements/pkg/roving"
	"github.com/vango-dev/elements/pkg/selection"
)

// Tags.
const (
	TagRoot    = "ui-tabs"
	TagList    = "ui-tabs-list"
	TagTrigger = "ui-tabs-trigger"
	TagContent = "ui-tabs-content"
)

// EventValueChange is dispatched by the root when interaction selects a
// different tab.
const EventValueChange = "value-change"

// ValueChange is the detail of value-change events.
type ValueChange struct {
	Value string `json:"value"`
}

// selectIntent is raised by triggers with their key.
var selectIntent = owner.NewIntent[string]("tabs-select")

// Tabs is the ui-tabs behavior.
type Tabs struct {
	element.Base

	sel        selection.Controller
	interacted bool
}

func newTabs(host *dom.Element) dom.Behavior {
	t := &Tabs{Base: element.New(host, element.SharedStyles())}
	selectIntent.Listen(host, func(from *dom.Element, key string) {
		t.request(from, key)
	})
	return t
}

// ObservedAttributes implements dom.AttributeObserver.
func (t *Tabs) ObservedAttributes() []string {
	return []string{"value", "default-value", "orientation", "dir", "loop"}
}

// AttributeChanged implements dom.AttributeObserver.
func (t *Tabs) AttributeChanged(name, _, value string) {
	host := t.Host()
	switch name {
	case "value":
		if host.HasAttr("value") {
			t.sel.SetControlled(value)
		} else {
			t.sel.ClearControlled()
		}
	case "default-value":
		// A changed default only moves a selection nobody has made yet.
		if !t.interacted && value != "" {
			t.sel.SetDefault(value)
		}
	}
	t.push()
}

// Connected implements dom.Connector.
func (t *Tabs) Connected() {
	t.push()
	// Triggers finish their own first render before the default is chosen
	// and tab stops are assigned.
	t.Defer(func() {
		if !t.Host().IsConnected() {
			return
		}
		if t.sel.Selected() == "" {
			for _, tr := range t.Triggers() {
				if !tr.Disabled() && tr.Key() != "" {
					t.sel.Adopt(tr.Key())
					break
				}
			}
		}
		t.push()
	})
}

// Update implements dom.Updater.
func (t *Tabs) Update() {
	t.Render(element.Slot())
}

// Value returns the selected key.
func (t *Tabs) Value() string { return t.sel.Selected() }

// Orientation returns the navigation orientation.
func (t *Tabs) Orientation() roving.Orientation {
	if t.Host().GetAttr("orientation") == string(roving.Vertical) {
		return roving.Vertical
	}
	return roving.Horizontal
}

// Dir returns the reading direction.
func (t *Tabs) Dir() roving.Direction {
	if t.Host().GetAttr("dir") == string(roving.RTL) {
		return roving.RTL
	}
	return roving.LTR
}

// Loop reports whether keyboard navigation wraps. It does unless loop="false".
func (t *Tabs) Loop() bool {
	v, ok := t.Host().Attr("loop")
	return !ok || v != "false"
}

// Triggers returns the triggers this root governs, in document order.
func (t *Tabs) Triggers() []*Trigger {
	return owner.Descendants[*Trigger](t.Host())
}

// Contents returns the panels this root governs, in document order.
func (t *Tabs) Contents() []*Content {
	return owner.Descendants[*Content](t.Host())
}

// Select requests key as a trigger activation would.
func (t *Tabs) Select(key string) bool {
	return t.request(nil, key)
}

func (t *Tabs) request(from *dom.Element, key string) bool {
	if from != nil && from.Disabled() {
		t.Logger().Debug("selection ignored", "reason", "disabled trigger", "key", key)
		return false
	}
	t.interacted = true
	changed := t.sel.Request(key, func(next string) {
		t.Emit(EventValueChange, ValueChange{Value: next})
	})
	if changed {
		t.push()
	}
	return changed
}

// push reflects the owner's state, then writes the selection to every
// trigger and panel it can currently find and resets tab stops.
func (t *Tabs) push() {
	host := t.Host()
	host.SetAttr("data-orientation", string(t.Orientation()))
	t.RequestUpdate()
	if !host.IsConnected() {
		return
	}

	key := t.sel.Selected()
	selection.Push(key, t.Triggers()...)
	selection.Push(key, t.Contents()...)
	for _, l := range owner.Descendants[*List](host) {
		l.sync(t)
	}
}
