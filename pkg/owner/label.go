package owner

import "github.com/vango-dev/elements/pkg/dom"

// LabelDelegate forwards clicks on the control's labels to the control: a
// <label for=id> anywhere in the document, or a <label> wrapping the control.
//
// The delegation is keyed on the control's id, so the control calls
// IDChanged from its attribute observer and the delegate re-subscribes.
type LabelDelegate struct {
	control  *dom.Element
	activate func()

	id     string
	remove func()
}

// NewLabelDelegate creates a detached delegate. activate runs for each label
// click that did not land on the control itself.
func NewLabelDelegate(control *dom.Element, activate func()) *LabelDelegate {
	return &LabelDelegate{control: control, activate: activate}
}

// Attach subscribes to label clicks for the control's current id.
func (l *LabelDelegate) Attach() {
	l.Detach()
	doc := l.control.Document()
	if doc == nil {
		return
	}
	l.id = l.control.ID()
	l.remove = doc.AddEventListener("click", l.handle)
}

// Detach removes the subscription.
func (l *LabelDelegate) Detach() {
	if l.remove != nil {
		l.remove()
		l.remove = nil
	}
}

// Attached reports whether the delegate is subscribed.
func (l *LabelDelegate) Attached() bool { return l.remove != nil }

// ID returns the id the delegate is subscribed for.
func (l *LabelDelegate) ID() string { return l.id }

// IDChanged re-subscribes after the control's id changed. A detached delegate
// stays detached.
func (l *LabelDelegate) IDChanged() {
	if l.remove == nil || l.id == l.control.ID() {
		return
	}
	l.Attach()
}

func (l *LabelDelegate) handle(ev *dom.Event) {
	origin := ev.OriginalTarget()
	if origin == nil || l.control.Contains(origin) {
		return
	}
	label := origin.Closest(dom.MatchTag("label"))
	if label == nil {
		return
	}
	if (l.id != "" && label.GetAttr("for") == l.id) || label.Contains(l.control) {
		l.activate()
	}
}
