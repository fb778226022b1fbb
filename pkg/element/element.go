// Package element provides the base every custom element behavior embeds.
//
// A Base owns the element's shadow root. Capabilities passed to New decorate
// the root before the element renders for the first time; SharedStyles is
// the capability that adopts the process-wide style sheet.
//
//	func newTrigger(host *dom.Element) dom.Behavior {
//		t := &Trigger{Base: element.New(host, element.SharedStyles())}
//		...
//	}
package element

import (
	"log/slog"

	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/style"
)

// Capability decorates an element's shadow root.
type Capability interface {
	Apply(root *dom.Element)
}

// CapabilityFunc adapts a function to Capability.
type CapabilityFunc func(root *dom.Element)

// Apply calls f.
func (f CapabilityFunc) Apply(root *dom.Element) { f(root) }

// SharedStyles adopts the shared style sheet current at construction time.
func SharedStyles() Capability {
	return CapabilityFunc(func(root *dom.Element) {
		root.AdoptStyleSheets(style.Shared())
	})
}

// Sheets adopts additional element-specific sheets.
func Sheets(sheets ...dom.StyleSheet) Capability {
	return CapabilityFunc(func(root *dom.Element) {
		root.AdoptStyleSheets(sheets...)
	})
}

// Base is embedded by behaviors.
type Base struct {
	host *dom.Element
	root *dom.Element
}

// New attaches a shadow root to host and applies the capabilities to it.
func New(host *dom.Element, caps ...Capability) Base {
	root := host.AttachShadow()
	for _, c := range caps {
		if c != nil {
			c.Apply(root)
		}
	}
	return Base{host: host, root: root}
}

// Host returns the element the behavior belongs to.
func (b *Base) Host() *dom.Element { return b.host }

// Root returns the element's shadow root.
func (b *Base) Root() *dom.Element { return b.root }

// Logger returns the document logger annotated with the element.
func (b *Base) Logger() *slog.Logger {
	return b.host.Document().Logger().With("element", b.host.Tag(), "uid", b.host.UID())
}

// RequestUpdate schedules the behavior's Update.
func (b *Base) RequestUpdate() {
	b.host.Document().Scheduler().RequestUpdate(b.host)
}

// AfterRender runs fn once the current render has been laid out.
func (b *Base) AfterRender(fn func()) {
	b.host.Document().Scheduler().AfterRender(fn)
}

// Defer runs fn on the next turn.
func (b *Base) Defer(fn func()) {
	b.host.Document().Scheduler().Defer(fn)
}

// Emit dispatches a bubbling, composed event from the host. It returns false
// if a listener called PreventDefault.
func (b *Base) Emit(typ string, detail any) bool {
	return b.host.Dispatch(dom.NewCustomEvent(typ, detail))
}

// Render replaces the shadow root's content with the given tree.
func (b *Base) Render(markup ...dom.Markup) {
	doc := b.host.Document()
	nodes := make([]*dom.Element, 0, len(markup))
	for _, s := range markup {
		nodes = append(nodes, doc.Build(s))
	}
	b.root.ReplaceChildren(nodes...)
}

// Reflect sets a presentation attribute, removing it when value is "".
func (b *Base) Reflect(name, value string) {
	if value == "" {
		b.host.RemoveAttr(name)
		return
	}
	b.host.SetAttr(name, value)
}

// ReflectBool sets name to "true" or "false".
func (b *Base) ReflectBool(name string, on bool) {
	if on {
		b.host.SetAttr(name, "true")
	} else {
		b.host.SetAttr(name, "false")
	}
}

// Slot is the markup of a default slot.
func Slot() dom.Markup { return dom.H("slot", nil) }

// Activation reports whether key activates a button-like element.
func Activation(key string) bool {
	return key == dom.KeyEnter || key == dom.KeySpace
}
