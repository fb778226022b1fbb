package tabs

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/owner"
	"github.com/vango-dev/elements/pkg/roving"
)

// List is the ui-tabs-list behavior. It owns keyboard navigation across its
// triggers.
type List struct {
	element.Base

	roving roving.Controller[*Trigger]
}

func newList(host *dom.Element) dom.Behavior {
	l := &List{Base: element.New(host, element.SharedStyles())}
	l.roving.Items = func() []*Trigger {
		return owner.Descendants[*Trigger](host)
	}
	host.AddEventListener("keydown", func(ev *dom.Event) {
		if l.roving.Handle(ev.Key()) {
			ev.PreventDefault()
		}
	})
	return l
}

// Connected implements dom.Connector.
func (l *List) Connected() {
	l.Host().SetAttr("role", "tablist")
	if root, ok := owner.Find[*Tabs](l.Host()); ok {
		l.sync(root)
	}
	l.RequestUpdate()
}

// Update implements dom.Updater.
func (l *List) Update() {
	l.Render(element.Slot())
}

// Roving returns the list's navigation controller.
func (l *List) Roving() *roving.Controller[*Trigger] { return &l.roving }

func (l *List) sync(root *Tabs) {
	l.roving.Orientation = root.Orientation()
	l.roving.Dir = root.Dir()
	l.roving.NoLoop = !root.Loop()
	l.Host().SetAttr("aria-orientation", string(l.roving.Orientation))
	l.roving.Reset()
}
