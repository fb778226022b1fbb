package collapsible

import (
	"strconv"

	"github.com/vango-dev/elements/pkg/disclosure"
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
)

// HeightProperty carries the measured natural height of the content, the
// target distance of the open and close animations.
const HeightProperty = "--collapsible-content-height"

// Content is the ui-collapsible-content behavior.
type Content struct {
	element.Base

	machine disclosure.Machine
	unsub   func()
	disarm  func()

	// observed records every state the machine entered, for diagnostics.
	observed []disclosure.State
}

func newContent(host *dom.Element) dom.Behavior {
	return &Content{Base: element.New(host, element.SharedStyles())}
}

// ObservedAttributes implements dom.AttributeObserver.
func (c *Content) ObservedAttributes() []string {
	return []string{"force-mount"}
}

// AttributeChanged implements dom.AttributeObserver.
func (c *Content) AttributeChanged(string, string, string) {
	c.RequestUpdate()
}

// Connected implements dom.Connector.
func (c *Content) Connected() {
	c.Host().SetAttr("role", "region")

	open := false
	if root, ok := owner.Find[*Collapsible](c.Host()); ok {
		open = root.Open()
		c.unsub = root.Subscribe(func(s Snapshot) { c.apply(s.Open) })
	}
	c.apply(open)
	c.RequestUpdate()

	// The first render is the first paint; changes after it animate.
	c.AfterRender(func() {
		if c.Host().IsConnected() {
			c.machine.MarkPainted()
		}
	})
}

// Disconnected implements dom.Disconnector.
func (c *Content) Disconnected() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
	c.disarmTransition()
	c.machine.Reset()
	c.observed = nil
}

// State returns the animation state.
func (c *Content) State() disclosure.State { return c.machine.State() }

// Observed returns the states entered since the content was connected.
func (c *Content) Observed() []disclosure.State {
	out := make([]disclosure.State, len(c.observed))
	copy(out, c.observed)
	return out
}

func (c *Content) apply(open bool) {
	if !c.machine.Set(open) {
		return
	}
	c.enter()
	if c.machine.State().Transient() {
		c.armTransition()
	}
	c.RequestUpdate()
	c.AfterRender(c.measure)
}

func (c *Content) enter() {
	c.observed = append(c.observed, c.machine.State())
}

// armTransition replaces any pending transition-finished subscription with
// one for the transition starting now.
func (c *Content) armTransition() {
	c.disarmTransition()
	host := c.Host()
	c.disarm = host.AddEventListener("transitionend", func(ev *dom.Event) {
		if ev.OriginalTarget() != host {
			return
		}
		c.disarmTransition()
		if !c.machine.Finish() {
			c.Logger().Debug("stale transition end ignored", "state", c.machine.State().String())
			return
		}
		c.enter()
		c.RequestUpdate()
	})
	host.StartTransition()
}

func (c *Content) disarmTransition() {
	if c.disarm != nil {
		c.disarm()
		c.disarm = nil
	}
}

// measure publishes the content's natural height. Content that has not been
// laid out yet is measured at the next checkpoint instead.
func (c *Content) measure() {
	host := c.Host()
	if !host.IsConnected() {
		return
	}
	if !host.LaidOut() {
		c.AfterRender(c.measure)
		return
	}
	h := host.ScrollHeight()
	host.SetStyleProperty(HeightProperty, strconv.FormatFloat(h, 'f', -1, 64)+"px")
}

// Update implements dom.Updater.
func (c *Content) Update() {
	host := c.Host()
	st := c.machine.State()
	force := host.BoolAttr("force-mount")

	host.SetAttr("data-state", st.String())
	host.ToggleAttr("hidden", st == disclosure.Closed)

	if st.Visible() || force {
		c.Render(element.Slot())
	} else {
		c.Render()
	}
}
