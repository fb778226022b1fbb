package owner

import (
	"testing"

	"github.com/vango-dev/elements/pkg/dom"
)

type group struct{ host *dom.Element }
type item struct{ host *dom.Element }

func newDoc(t *testing.T) *dom.Document {
	t.Helper()
	doc := dom.NewDocument()
	defs := map[string]dom.Constructor{
		"x-group": func(h *dom.Element) dom.Behavior { return &group{host: h} },
		"x-item":  func(h *dom.Element) dom.Behavior { return &item{host: h} },
	}
	for tag, ctor := range defs {
		if err := doc.Define(tag, ctor); err != nil {
			t.Fatal(err)
		}
	}
	return doc
}

func attrs(id string) map[string]string { return map[string]string{"id": id} }

func TestFind(t *testing.T) {
	doc := newDoc(t)
	doc.Mount(dom.H("x-group", attrs("outer"),
		dom.H("div", nil,
			dom.H("x-group", attrs("inner"),
				dom.H("x-item", attrs("a")),
			),
		),
		dom.H("x-item", attrs("b")),
	))
	loose := doc.Mount(dom.H("x-item", attrs("loose")))

	tests := []struct {
		id   string
		want string
	}{
		{"a", "inner"},
		{"b", "outer"},
		{"inner", "outer"},
		{"outer", ""},
	}
	for _, tt := range tests {
		el := doc.ElementByID(tt.id)
		g, ok := Find[*group](el)
		got := ""
		if ok {
			got = g.host.ID()
		}
		if got != tt.want {
			t.Errorf("Find(%s) = %q, want %q", tt.id, got, tt.want)
		}
	}

	if _, ok := Find[*group](loose); ok {
		t.Error("standalone item found an owner")
	}
	if FindElement[*group](loose) != nil {
		t.Error("FindElement found an owner for standalone item")
	}
}

func TestFindCrossesShadowRoot(t *testing.T) {
	doc := newDoc(t)
	g := doc.Mount(dom.H("x-group", attrs("g")))
	inner := doc.CreateElement("button")
	g.AttachShadow().Append(inner)

	if _, ok := Find[*group](inner); !ok {
		t.Error("Find did not cross the shadow boundary")
	}
}

func TestDescendantsSkipsNestedOwners(t *testing.T) {
	doc := newDoc(t)
	outer := doc.Mount(dom.H("x-group", nil,
		dom.H("x-item", attrs("a")),
		dom.H("div", nil, dom.H("x-item", attrs("b"))),
		dom.H("x-group", nil, dom.H("x-item", attrs("nested"))),
		dom.H("x-item", attrs("c")),
	))

	var ids []string
	for _, it := range Descendants[*item](outer) {
		ids = append(ids, it.host.ID())
	}
	if got := join(ids); got != "a,b,c" {
		t.Errorf("Descendants = %s, want a,b,c", got)
	}
}

func TestDescendantsIsNotCached(t *testing.T) {
	doc := newDoc(t)
	g := doc.Mount(dom.H("x-group", nil, dom.H("x-item", attrs("a"))))
	if n := len(Descendants[*item](g)); n != 1 {
		t.Fatalf("len = %d", n)
	}
	g.Append(doc.Build(dom.H("x-item", attrs("b"))))
	doc.ElementByID("a").Remove()

	got := Descendants[*item](g)
	if len(got) != 1 || got[0].host.ID() != "b" {
		t.Errorf("Descendants after mutation = %v", got)
	}
}

func TestIntent(t *testing.T) {
	doc := newDoc(t)
	doc.Mount(dom.H("x-group", attrs("outer"),
		dom.H("x-group", attrs("inner"),
			dom.H("x-item", attrs("a")),
		),
	))
	select1 := NewIntent[string]("x-select")

	var got []string
	stopOuter := select1.Listen(doc.ElementByID("outer"), func(from *dom.Element, key string) {
		got = append(got, "outer:"+from.ID()+":"+key)
	})
	defer stopOuter()
	stopInner := select1.Listen(doc.ElementByID("inner"), func(from *dom.Element, key string) {
		got = append(got, "inner:"+from.ID()+":"+key)
	})

	a := doc.ElementByID("a")
	if !select1.Emit(a, "one") {
		t.Error("intent not reported handled")
	}
	stopInner()
	select1.Emit(a, "two")

	if join(got) != "inner:a:one,outer:a:two" {
		t.Errorf("got %v", got)
	}

	stopOuter()
	if select1.Emit(a, "three") {
		t.Error("unhandled intent reported handled")
	}
}

func TestIntentIgnoresForeignPayload(t *testing.T) {
	doc := newDoc(t)
	g := doc.Mount(dom.H("x-group", nil))
	in := NewIntent[int]("x-count")

	called := false
	in.Listen(g, func(*dom.Element, int) { called = true })
	g.Dispatch(dom.NewCustomEvent("x-count", "not an int"))
	if called {
		t.Error("listener ran for mismatched payload")
	}
}

func TestTopic(t *testing.T) {
	var topic Topic[string]
	var got []string

	var unsubB func()
	unsubA := topic.Subscribe(func(v string) {
		got = append(got, "a:"+v)
		unsubB()
	})
	unsubB = topic.Subscribe(func(v string) { got = append(got, "b:"+v) })

	topic.Publish("1")
	topic.Publish("2")
	unsubA()
	unsubA()
	topic.Publish("3")

	if join(got) != "a:1,a:2" {
		t.Errorf("got %v", got)
	}
	if n := topic.Len(); n != 0 {
		t.Errorf("Len = %d", n)
	}
}

func TestLabelDelegate(t *testing.T) {
	doc := newDoc(t)
	doc.Mount(dom.H("div", nil,
		dom.H("label", map[string]string{"id": "for-label", "for": "cb"}, dom.H("span", attrs("label-text"))),
		dom.H("label", attrs("wrap"), dom.H("x-item", attrs("cb"))),
		dom.H("label", map[string]string{"id": "other", "for": "nope"}),
	))
	control := doc.ElementByID("cb")

	var clicks int
	d := NewLabelDelegate(control, func() { clicks++ })
	d.Attach()

	doc.ElementByID("label-text").Click()
	doc.ElementByID("wrap").Click()
	control.Click()
	doc.ElementByID("other").Click()
	if clicks != 2 {
		t.Fatalf("clicks = %d, want 2", clicks)
	}

	control.SetAttr("id", "renamed")
	d.IDChanged()
	if d.ID() != "renamed" {
		t.Errorf("ID = %q", d.ID())
	}
	doc.ElementByID("for-label").Click()
	if clicks != 2 {
		t.Errorf("stale label still forwarded: clicks = %d", clicks)
	}
	doc.ElementByID("for-label").SetAttr("for", "renamed")
	doc.ElementByID("for-label").Click()
	if clicks != 3 {
		t.Errorf("clicks = %d, want 3", clicks)
	}

	d.Detach()
	doc.ElementByID("wrap").Click()
	if clicks != 3 || d.Attached() {
		t.Errorf("detached delegate forwarded: clicks = %d", clicks)
	}
}

func join(s []string) string {
	out := ""
	for i, v := range s {
		if i > 0 {
			out += ","
		}
		out += v
	}
	return out
}
