package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreateElementArguments(t *testing.T) {
	node := Div(
		nil,
		Class("a"),
		[]Attr{Data("state", "open"), Role("region")},
		Span(Text("one")),
		[]*VNode{P(), nil},
		"tail",
	)

	if node.Tag != "div" || node.Kind != KindElement {
		t.Fatalf("unexpected node %+v", node)
	}
	if got, _ := node.Attr("data-state"); got != "open" {
		t.Errorf("data-state = %q, want open", got)
	}
	if got, _ := node.Attr("role"); got != "region" {
		t.Errorf("role = %q, want region", got)
	}
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(node.Children))
	}
	if node.Children[2].Kind != KindText || node.Children[2].Text != "tail" {
		t.Errorf("string shorthand not converted to text: %+v", node.Children[2])
	}
}

func TestClassMerge(t *testing.T) {
	node := Div(Class("a"), Class("b c"), Class("e"))
	if got, _ := node.Attr("class"); got != "a b c e" {
		t.Errorf("class = %q, want %q", got, "a b c e")
	}
}

func TestKeyAttributeIsNotAProp(t *testing.T) {
	node := Li(AttrOf("key", "row-1"))
	if node.Key != "row-1" {
		t.Errorf("Key = %q, want row-1", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key should not be stored as a prop")
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tree := Div(Span(Text("a")), Span(Text("b")), Span(Text("c")))
	var spans int
	tree.Walk(func(n *VNode) bool {
		if n.Tag == "span" {
			spans++
			return spans < 2
		}
		return true
	})
	if spans != 2 {
		t.Errorf("visited %d spans, want 2", spans)
	}
}

func TestFragmentAndRange(t *testing.T) {
	items := []string{"x", "", "z"}
	frag := Fragment(Range(items, func(s string, _ int) *VNode {
		if s == "" {
			return nil
		}
		return Li(Text(s))
	}), nil, "end")
	if len(frag.Children) != 3 {
		t.Fatalf("fragment children = %d, want 3", len(frag.Children))
	}
	if If(false, Div()) != nil {
		t.Error("If(false) should return nil")
	}
	if !IsVoidElement("input") || IsVoidElement("div") {
		t.Error("IsVoidElement mismatch")
	}
}
