package dom

import "sort"

// Markup describes an element tree. Stories and tests build trees from
// Markup values instead of wiring elements by hand.
type Markup struct {
	Tag      string            `yaml:"tag,omitempty" json:"tag,omitempty"`
	Text     string            `yaml:"text,omitempty" json:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Height   float64           `yaml:"height,omitempty" json:"height,omitempty"`
	Children []Markup          `yaml:"children,omitempty" json:"children,omitempty"`
}

// H is shorthand for element markup.
func H(tag string, attrs map[string]string, children ...Markup) Markup {
	return Markup{Tag: tag, Attrs: attrs, Children: children}
}

// T is shorthand for a text node.
func T(text string) Markup {
	return Markup{Text: text}
}

// Build creates the tree described by m. The result is disconnected;
// append it to the body to mount it. Attributes are set in sorted name
// order before children are appended.
func (d *Document) Build(m Markup) *Element {
	if m.Tag == "" {
		return d.CreateText(m.Text)
	}

	e := d.CreateElement(m.Tag)
	names := make([]string, 0, len(m.Attrs))
	for name := range m.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e.SetAttr(name, m.Attrs[name])
	}
	if m.Height > 0 {
		e.SetScrollHeight(m.Height)
	}
	if m.Text != "" {
		e.Append(d.CreateText(m.Text))
	}
	for _, child := range m.Children {
		e.Append(d.Build(child))
	}
	return e
}

// Mount builds m and appends it to the body.
func (d *Document) Mount(m Markup) *Element {
	e := d.Build(m)
	d.body.Append(e)
	return e
}
