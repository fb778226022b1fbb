package dom

import (
	"strconv"
	"strings"
)

// NodeKind distinguishes the kinds of nodes in the tree.
type NodeKind uint8

const (
	ElementNode NodeKind = iota
	TextNode
	ShadowRootNode
)

// Behavior is the implementation object of a custom element. It receives
// lifecycle callbacks through the optional interfaces below.
type Behavior any

// Constructor creates the behavior for a newly created custom element.
type Constructor func(host *Element) Behavior

// Connector is implemented by behaviors that react to being attached to the
// document.
type Connector interface {
	Connected()
}

// Disconnector is implemented by behaviors that release resources when
// detached from the document.
type Disconnector interface {
	Disconnected()
}

// AttributeObserver is implemented by behaviors that react to changes of
// their own attributes. Removal is reported with value "" and can be told
// apart from an empty value with HasAttr.
type AttributeObserver interface {
	ObservedAttributes() []string
	AttributeChanged(name, old, value string)
}

// Updater is implemented by behaviors that render. Update runs in the
// scheduler's update batch after RequestUpdate.
type Updater interface {
	Update()
}

// StyleSheet is a style sheet that can be adopted by a shadow root.
type StyleSheet interface {
	CSSText() string
}

// Attribute is a name/value pair.
type Attribute struct {
	Name  string
	Value string
}

// Element is a node in the tree: an element, a text node or a shadow root.
type Element struct {
	doc  *Document
	uid  string
	kind NodeKind
	tag  string
	text string

	attrs []Attribute
	style []Attribute

	parent   *Element
	children []*Element
	shadow   *Element
	host     *Element
	adopted  []StyleSheet

	behavior  Behavior
	listeners map[string][]*listener
	internals *Internals

	connected     bool
	laidOut       bool
	scrollHeight  float64
	hasHeight     bool
	transitioning bool
}

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// UID returns the document-unique identifier assigned at creation.
func (e *Element) UID() string { return e.uid }

// Kind returns the node kind.
func (e *Element) Kind() NodeKind { return e.kind }

// Tag returns the lower-case tag name, "#text" or "#shadow-root".
func (e *Element) Tag() string { return e.tag }

// IsText reports whether e is a text node.
func (e *Element) IsText() bool { return e.kind == TextNode }

// IsShadowRoot reports whether e is a shadow root.
func (e *Element) IsShadowRoot() bool { return e.kind == ShadowRootNode }

// Behavior returns the custom element behavior, or nil.
func (e *Element) Behavior() Behavior { return e.behavior }

// Data returns the content of a text node.
func (e *Element) Data() string { return e.text }

// SetData replaces the content of a text node.
func (e *Element) SetData(s string) { e.text = s }

// TextContent returns the concatenated text of e and its light descendants.
func (e *Element) TextContent() string {
	if e.kind == TextNode {
		return e.text
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// =============================================================================
// Attributes
// =============================================================================

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// GetAttr returns the value of the named attribute or "".
func (e *Element) GetAttr(name string) string {
	v, _ := e.Attr(name)
	return v
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Attrs returns a copy of the attributes in insertion order.
func (e *Element) Attrs() []Attribute {
	out := make([]Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// SetAttr sets an attribute. Setting an attribute to its current value does
// nothing and does not notify the behavior.
func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Name == name {
			if a.Value == value {
				return
			}
			e.attrs[i].Value = value
			e.attributeChanged(name, a.Value, value)
			return
		}
	}
	e.attrs = append(e.attrs, Attribute{Name: name, Value: value})
	e.attributeChanged(name, "", value)
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			e.attributeChanged(name, a.Value, "")
			return
		}
	}
}

// ToggleAttr adds (as an empty value) or removes a boolean attribute.
func (e *Element) ToggleAttr(name string, on bool) {
	if on {
		if !e.HasAttr(name) {
			e.SetAttr(name, "")
		}
		return
	}
	e.RemoveAttr(name)
}

// BoolAttr reports whether a boolean attribute is on. Absent and "false"
// are off.
func (e *Element) BoolAttr(name string) bool {
	v, ok := e.Attr(name)
	return ok && v != "false"
}

// ID returns the id attribute.
func (e *Element) ID() string { return e.GetAttr("id") }

// Disabled reports whether the disabled attribute is on.
func (e *Element) Disabled() bool { return e.BoolAttr("disabled") }

func (e *Element) attributeChanged(name, old, value string) {
	obs, ok := e.behavior.(AttributeObserver)
	if !ok {
		return
	}
	for _, n := range obs.ObservedAttributes() {
		if n == name {
			obs.AttributeChanged(name, old, value)
			return
		}
	}
}

// =============================================================================
// Inline style
// =============================================================================

// StyleProperty returns an inline style property such as a custom property.
func (e *Element) StyleProperty(name string) string {
	for _, p := range e.style {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// SetStyleProperty sets an inline style property.
func (e *Element) SetStyleProperty(name, value string) {
	for i, p := range e.style {
		if p.Name == name {
			e.style[i].Value = value
			return
		}
	}
	e.style = append(e.style, Attribute{Name: name, Value: value})
}

// RemoveStyleProperty removes an inline style property.
func (e *Element) RemoveStyleProperty(name string) {
	for i, p := range e.style {
		if p.Name == name {
			e.style = append(e.style[:i], e.style[i+1:]...)
			return
		}
	}
}

// StyleText serialises the inline style properties.
func (e *Element) StyleText() string {
	parts := make([]string, 0, len(e.style))
	for _, p := range e.style {
		parts = append(parts, p.Name+": "+p.Value)
	}
	return strings.Join(parts, "; ")
}

// =============================================================================
// Focus
// =============================================================================

var nativelyFocusable = map[string]bool{
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
}

// TabIndex returns the tabindex attribute, 0 for natively focusable tags and
// -1 otherwise.
func (e *Element) TabIndex() int {
	if v, ok := e.Attr("tabindex"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	if nativelyFocusable[e.tag] || (e.tag == "a" && e.HasAttr("href")) {
		return 0
	}
	return -1
}

// SetTabIndex sets the tabindex attribute.
func (e *Element) SetTabIndex(n int) {
	e.SetAttr("tabindex", strconv.Itoa(n))
}

// Focusable reports whether e takes part in sequential focus navigation.
func (e *Element) Focusable() bool {
	return e.kind == ElementNode && e.connected && !e.Disabled() && e.TabIndex() >= 0
}

// Focus makes e the active element.
func (e *Element) Focus() {
	if e.doc == nil || e.kind != ElementNode || !e.connected {
		return
	}
	e.doc.setActive(e)
}

// Blur clears focus if e is the active element.
func (e *Element) Blur() {
	if e.doc != nil && e.doc.active == e {
		e.doc.setActive(nil)
	}
}

// Focused reports whether e is the active element.
func (e *Element) Focused() bool {
	return e.doc != nil && e.doc.active == e
}
