package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
		return
	}
	// Repeated class attributes merge instead of replacing.
	if a.Key == "class" {
		if prev, ok := v.Props["class"].(string); ok && prev != "" {
			if s, ok := a.Value.(string); ok && s != "" {
				v.Props["class"] = prev + " " + s
				return
			}
		}
	}
	v.Props[a.Key] = a.Value
}

// El creates an element with an arbitrary tag name. Custom element tags
// (ui-tabs, ui-checkbox, ...) are built with El.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// Document structure

func Body(args ...any) *VNode  { return createElement("body", args) }
func Style(args ...any) *VNode { return createElement("style", args) }

// Sectioning

func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Article(args ...any) *VNode { return createElement("article", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

// Grouping and text

func Div(args ...any) *VNode      { return createElement("div", args) }
func P(args ...any) *VNode        { return createElement("p", args) }
func Span(args ...any) *VNode     { return createElement("span", args) }
func Pre(args ...any) *VNode      { return createElement("pre", args) }
func Ul(args ...any) *VNode       { return createElement("ul", args) }
func Li(args ...any) *VNode       { return createElement("li", args) }
func A(args ...any) *VNode        { return createElement("a", args) }
func Code(args ...any) *VNode     { return createElement("code", args) }
func Strong(args ...any) *VNode   { return createElement("strong", args) }
func Template(args ...any) *VNode { return createElement("template", args) }
func Table(args ...any) *VNode    { return createElement("table", args) }
func Tr(args ...any) *VNode       { return createElement("tr", args) }
func Td(args ...any) *VNode       { return createElement("td", args) }
func Th(args ...any) *VNode       { return createElement("th", args) }
