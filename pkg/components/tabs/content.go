package tabs

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
)

// Content is the ui-tabs-content behavior.
type Content struct {
	element.Base

	selected bool
}

func newContent(host *dom.Element) dom.Behavior {
	return &Content{Base: element.New(host, element.SharedStyles())}
}

// ObservedAttributes implements dom.AttributeObserver.
func (c *Content) ObservedAttributes() []string {
	return []string{"value", "force-mount"}
}

// AttributeChanged implements dom.AttributeObserver.
func (c *Content) AttributeChanged(name, _, _ string) {
	if name == "value" && c.Host().IsConnected() {
		if root, ok := owner.Find[*Tabs](c.Host()); ok {
			root.push()
			return
		}
	}
	c.RequestUpdate()
}

// Connected implements dom.Connector.
func (c *Content) Connected() {
	host := c.Host()
	host.SetAttr("role", "tabpanel")
	if !host.HasAttr("tabindex") {
		host.SetTabIndex(0)
	}
	c.selected = false
	if root, ok := owner.Find[*Tabs](host); ok {
		c.selected = root.Value() != "" && root.Value() == c.Key()
	}
	c.RequestUpdate()
}

// Key returns the panel's value.
func (c *Content) Key() string { return c.Host().GetAttr("value") }

// Active reports whether the panel's key is selected.
func (c *Content) Active() bool { return c.selected }

// SetSelected implements selection.Item.
func (c *Content) SetSelected(selected bool) {
	c.selected = selected
	c.RequestUpdate()
}

// Update implements dom.Updater.
func (c *Content) Update() {
	host := c.Host()
	if c.selected {
		host.SetAttr("data-state", "active")
	} else {
		host.SetAttr("data-state", "inactive")
	}
	host.ToggleAttr("hidden", !c.selected)

	if c.selected || host.BoolAttr("force-mount") {
		c.Render(element.Slot())
	} else {
		c.Render()
	}
}
