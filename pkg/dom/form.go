package dom

// Internals lets a custom element take part in form submission.
type Internals struct {
	host     *Element
	value    string
	hasValue bool
}

// AttachInternals returns the element's form internals, creating them on
// first use.
func (e *Element) AttachInternals() *Internals {
	if e.internals == nil {
		e.internals = &Internals{host: e}
	}
	return e.internals
}

// SetFormValue publishes value as the element's submission value.
func (i *Internals) SetFormValue(value string) {
	i.value = value
	i.hasValue = true
}

// ClearFormValue withdraws the element from submission, as an unchecked
// checkbox is.
func (i *Internals) ClearFormValue() {
	i.value = ""
	i.hasValue = false
}

// FormValue returns the published value and whether one is set.
func (i *Internals) FormValue() (string, bool) {
	return i.value, i.hasValue
}

// Form returns the nearest enclosing form element, or nil.
func (i *Internals) Form() *Element {
	p := i.host.ParentOrHost()
	if p == nil {
		return nil
	}
	return p.Closest(MatchTag("form"))
}

// FormResetter is implemented by form-associated behaviors that restore
// their default value when their form is reset.
type FormResetter interface {
	FormReset()
}

// FormEntry is one name/value pair of submission data.
type FormEntry struct {
	Name  string
	Value string
}

// FormData is the ordered submission data of a form.
type FormData []FormEntry

// Get returns the first value for name.
func (fd FormData) Get(name string) (string, bool) {
	for _, e := range fd {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Values returns all values for name.
func (fd FormData) Values(name string) []string {
	var out []string
	for _, e := range fd {
		if e.Name == name {
			out = append(out, e.Value)
		}
	}
	return out
}

// SubmitEvent is the Detail of submit events.
type SubmitEvent struct {
	Data      FormData
	Submitter *Element
}

// FormData collects the submission data of the form element e: every named,
// enabled, form-associated descendant that has published a value, in
// document order.
func (e *Element) FormData() FormData {
	var fd FormData
	for _, n := range e.formControls() {
		name := n.GetAttr("name")
		if name == "" || n.Disabled() {
			continue
		}
		if v, ok := n.internals.FormValue(); ok {
			fd = append(fd, FormEntry{Name: name, Value: v})
		}
	}
	return fd
}

// RequestSubmit dispatches a submit event on the form element e carrying its
// data and, when the submitter is named, the submitter's value.
func (e *Element) RequestSubmit(submitter *Element) bool {
	fd := e.FormData()
	if submitter != nil {
		if name := submitter.GetAttr("name"); name != "" {
			fd = append(fd, FormEntry{Name: name, Value: submitter.GetAttr("value")})
		}
	}
	return e.Dispatch(&Event{
		Type:    "submit",
		Detail:  SubmitEvent{Data: fd, Submitter: submitter},
		Bubbles: true,
	})
}

// ResetForm restores every form-associated descendant of the form element e
// to its default and dispatches a reset event.
func (e *Element) ResetForm() {
	for _, n := range e.formControls() {
		if r, ok := n.behavior.(FormResetter); ok {
			r.FormReset()
		}
	}
	e.Dispatch(&Event{Type: "reset", Bubbles: true})
}

func (e *Element) formControls() []*Element {
	return e.QueryAll(func(n *Element) bool {
		return n.internals != nil && n.internals.Form() == e
	})
}
