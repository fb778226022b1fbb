// Package button implements ui-button, a styled button that submits or
// resets its enclosing form.
package button

import (
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/style"
)

// Tag is the element tag.
const Tag = "ui-button"

// Classes resolves the button's classes from its variant and size.
var Classes = style.Variants{
	Base: "inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
	Variants: map[string]map[string]string{
		"variant": {
			"default":     "bg-primary text-primary-foreground hover:bg-primary/90",
			"primary":     "bg-primary text-primary-foreground hover:bg-primary/90",
			"destructive": "bg-destructive text-destructive-foreground hover:bg-destructive/90",
			"outline":     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
			"secondary":   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
			"ghost":       "hover:bg-accent hover:text-accent-foreground",
			"link":        "text-primary underline-offset-4 hover:underline",
		},
		"size": {
			"xs":   "h-7 rounded px-2 text-xs",
			"sm":   "h-9 rounded-md px-3",
			"md":   "h-10 px-4 py-2",
			"lg":   "h-11 rounded-md px-8",
			"xl":   "h-12 rounded-md px-10 text-base",
			"icon": "h-10 w-10",
		},
	},
	Defaults: map[string]string{"variant": "default", "size": "md"},
}

// Button is the ui-button behavior.
type Button struct {
	element.Base

	internals *dom.Internals
}

func newButton(host *dom.Element) dom.Behavior {
	b := &Button{
		Base:      element.New(host, element.SharedStyles()),
		internals: host.AttachInternals(),
	}
	host.AddEventListener("click", b.click)
	host.AddEventListener("keydown", func(ev *dom.Event) {
		if element.Activation(ev.Key()) {
			ev.PreventDefault()
			host.Click()
		}
	})
	return b
}

// ObservedAttributes implements dom.AttributeObserver.
func (b *Button) ObservedAttributes() []string {
	return []string{"disabled", "loading", "variant", "size"}
}

// AttributeChanged implements dom.AttributeObserver.
func (b *Button) AttributeChanged(string, string, string) {
	b.sync()
}

// Connected implements dom.Connector.
func (b *Button) Connected() {
	b.Host().SetAttr("role", "button")
	b.sync()
}

// Update implements dom.Updater.
func (b *Button) Update() {
	host := b.Host()
	cls := Classes.Resolve(map[string]string{
		"variant": host.GetAttr("variant"),
		"size":    host.GetAttr("size"),
	})
	var children []dom.Markup
	if host.BoolAttr("loading") {
		children = append(children, dom.H("span", map[string]string{
			"part":        "spinner",
			"class":       "mr-2 h-4 w-4 animate-spin",
			"aria-hidden": "true",
		}))
	}
	children = append(children, element.Slot())
	b.Render(dom.H("span", map[string]string{"part": "button", "class": cls}, children...))
}

// Type returns the button type: submit (the default), reset or button.
func (b *Button) Type() string {
	switch t := b.Host().GetAttr("type"); t {
	case "reset", "button":
		return t
	default:
		return "submit"
	}
}

// Disabled reports whether the button ignores activation. A loading button
// is disabled.
func (b *Button) Disabled() bool {
	return b.Host().Disabled() || b.Host().BoolAttr("loading")
}

func (b *Button) click(ev *dom.Event) {
	if b.Disabled() {
		ev.StopPropagation()
		ev.PreventDefault()
		b.Logger().Debug("click ignored", "reason", "disabled")
		return
	}
	form := b.internals.Form()
	if form == nil {
		return
	}
	switch b.Type() {
	case "submit":
		form.RequestSubmit(b.Host())
	case "reset":
		form.ResetForm()
	}
}

func (b *Button) sync() {
	host := b.Host()
	disabled := b.Disabled()
	host.ToggleAttr("data-disabled", disabled)
	if disabled {
		host.SetAttr("aria-disabled", "true")
		host.SetTabIndex(-1)
	} else {
		host.RemoveAttr("aria-disabled")
		host.SetTabIndex(0)
	}
	if host.BoolAttr("loading") {
		host.SetAttr("aria-busy", "true")
	} else {
		host.RemoveAttr("aria-busy")
	}
	b.RequestUpdate()
}
