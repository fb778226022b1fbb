package dom

import (
	"strings"
	"testing"

	"github.com/vango-dev/elements/pkg/render"
)

type lifecycle struct {
	host   *Element
	log    *[]string
	seen   []string
	update int
}

func (l *lifecycle) Connected()    { *l.log = append(*l.log, "connect "+l.host.ID()) }
func (l *lifecycle) Disconnected() { *l.log = append(*l.log, "disconnect "+l.host.ID()) }
func (l *lifecycle) Update()       { l.update++ }
func (l *lifecycle) ObservedAttributes() []string {
	return []string{"open"}
}
func (l *lifecycle) AttributeChanged(name, old, value string) {
	l.seen = append(l.seen, name+":"+old+"->"+value)
}

func newLifecycleDoc(t *testing.T) (*Document, *[]string) {
	t.Helper()
	var log []string
	doc := NewDocument()
	if err := doc.Define("x-node", func(host *Element) Behavior {
		return &lifecycle{host: host, log: &log}
	}); err != nil {
		t.Fatalf("Define: %v", err)
	}
	return doc, &log
}

func TestDefine(t *testing.T) {
	doc := NewDocument()
	ctor := func(*Element) Behavior { return nil }

	if err := doc.Define("plain", ctor); err == nil {
		t.Error("Define without hyphen should fail")
	}
	if err := doc.Define("x-a", ctor); err != nil {
		t.Fatalf("Define: %v", err)
	}
	if err := doc.Define("X-A", ctor); err == nil {
		t.Error("duplicate Define should fail")
	}
	if !doc.Defined("x-a") {
		t.Error("Defined(x-a) = false")
	}
}

func TestConnectOrder(t *testing.T) {
	doc, log := newLifecycleDoc(t)
	outer := doc.Build(H("x-node", map[string]string{"id": "outer"},
		H("x-node", map[string]string{"id": "inner"}),
	))
	shadow := outer.AttachShadow()
	shadow.Append(doc.Build(H("x-node", map[string]string{"id": "shadow"})))

	if len(*log) != 0 {
		t.Fatalf("disconnected tree ran callbacks: %v", *log)
	}
	doc.Body().Append(outer)
	want := []string{"connect outer", "connect shadow", "connect inner"}
	if strings.Join(*log, ",") != strings.Join(want, ",") {
		t.Errorf("connect order = %v, want %v", *log, want)
	}

	*log = nil
	outer.Remove()
	if len(*log) != 3 || (*log)[0] != "disconnect outer" {
		t.Errorf("disconnect = %v", *log)
	}
}

func TestAttributeObserver(t *testing.T) {
	doc, _ := newLifecycleDoc(t)
	el := doc.CreateElement("x-node")
	b := el.Behavior().(*lifecycle)

	el.SetAttr("open", "")
	el.SetAttr("open", "")
	el.SetAttr("title", "ignored")
	el.RemoveAttr("open")

	want := []string{"open:->", "open:->"}
	if strings.Join(b.seen, ",") != strings.Join(want, ",") {
		t.Errorf("seen = %v, want %v", b.seen, want)
	}
	if el.HasAttr("open") {
		t.Error("open still present")
	}
}

func TestBoolAttr(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	tests := []struct {
		value   string
		present bool
		want    bool
	}{
		{"", false, false},
		{"", true, true},
		{"true", true, true},
		{"false", true, false},
	}
	for _, tt := range tests {
		el.RemoveAttr("disabled")
		if tt.present {
			el.SetAttr("disabled", tt.value)
		}
		if got := el.Disabled(); got != tt.want {
			t.Errorf("disabled=%q present=%v: got %v, want %v", tt.value, tt.present, got, tt.want)
		}
	}
}

func TestDispatchBubblingAndRetarget(t *testing.T) {
	doc := NewDocument()
	host := doc.Mount(H("div", map[string]string{"id": "host"}))
	shadow := host.AttachShadow()
	inner := doc.CreateElement("button")
	shadow.Append(inner)

	var targets []string
	host.AddEventListener("ping", func(ev *Event) {
		targets = append(targets, ev.Target().ID())
	})

	inner.Dispatch(&Event{Type: "ping", Bubbles: true})
	if len(targets) != 0 {
		t.Errorf("non-composed event crossed shadow boundary: %v", targets)
	}

	inner.Dispatch(NewCustomEvent("ping", nil))
	if len(targets) != 1 || targets[0] != "host" {
		t.Errorf("targets = %v, want [host]", targets)
	}
}

func TestStopPropagationAndOnce(t *testing.T) {
	doc := NewDocument()
	parent := doc.Mount(H("div", nil, H("span", map[string]string{"id": "child"})))
	child := doc.ElementByID("child")

	var parentHits, childHits int
	parent.AddEventListener("x", func(*Event) { parentHits++ })
	child.AddEventListener("x", func(ev *Event) {
		childHits++
		ev.StopPropagation()
	}, Once())

	child.Dispatch(NewCustomEvent("x", nil))
	child.Dispatch(NewCustomEvent("x", nil))

	if childHits != 1 {
		t.Errorf("once listener ran %d times", childHits)
	}
	if parentHits != 1 {
		t.Errorf("parent hits = %d, want 1", parentHits)
	}
	if n := child.ListenerCount("x"); n != 0 {
		t.Errorf("ListenerCount = %d after once", n)
	}
}

func TestRemoveListenerDuringDispatch(t *testing.T) {
	doc := NewDocument()
	el := doc.Mount(H("div", nil))

	var second int
	var removeSecond func()
	el.AddEventListener("x", func(*Event) { removeSecond() })
	removeSecond = el.AddEventListener("x", func(*Event) { second++ })

	el.Dispatch(NewCustomEvent("x", nil))
	if second != 0 {
		t.Errorf("removed listener ran %d times", second)
	}
	removeSecond()
}

func TestSchedulerOrdering(t *testing.T) {
	doc, _ := newLifecycleDoc(t)
	el := doc.Mount(H("x-node", map[string]string{"id": "a"}))
	b := el.Behavior().(*lifecycle)
	s := doc.Scheduler()

	var order []string
	s.Defer(func() { order = append(order, "task") })
	s.AfterRender(func() {
		order = append(order, "after-render")
		if !el.LaidOut() {
			t.Error("after-render ran before layout")
		}
		s.RequestUpdate(el)
	})
	s.RequestUpdate(el)
	s.RequestUpdate(el)

	doc.Flush()

	if b.update != 2 {
		t.Errorf("updates = %d, want 2", b.update)
	}
	if strings.Join(order, ",") != "after-render,task" {
		t.Errorf("order = %v", order)
	}
	if s.Pending() {
		t.Error("scheduler still pending")
	}
}

func TestSchedulerIterationGuard(t *testing.T) {
	doc := NewDocument(WithMaxFlushIterations(5))
	var runs int
	var loop func()
	loop = func() {
		runs++
		doc.Scheduler().Defer(loop)
	}
	doc.Scheduler().Defer(loop)
	doc.Flush()

	if runs != 5 {
		t.Errorf("runs = %d, want 5", runs)
	}
	if doc.Scheduler().Pending() {
		t.Error("work left queued after guard")
	}
}

func TestLayoutAndTransitions(t *testing.T) {
	doc := NewDocument()
	box := doc.Build(H("div", nil,
		Markup{Tag: "p", Height: 20},
		Markup{Tag: "p", Height: 30},
	))
	if h := box.ScrollHeight(); h != 0 {
		t.Errorf("disconnected height = %v", h)
	}
	doc.Body().Append(box)
	if box.LaidOut() {
		t.Error("laid out before flush")
	}
	doc.Flush()
	if !box.LaidOut() {
		t.Error("not laid out after flush")
	}
	if h := box.ScrollHeight(); h != 50 {
		t.Errorf("height = %v, want 50", h)
	}

	var ends int
	box.AddEventListener("transitionend", func(*Event) { ends++ })
	box.StartTransition()
	box.StartTransition()
	if n := doc.RunningTransitions(); n != 1 {
		t.Errorf("running = %d, want 1", n)
	}
	if n := doc.FinishTransitions(); n != 1 || ends != 1 {
		t.Errorf("finished %d, ends %d", n, ends)
	}

	box.StartTransition()
	box.Remove()
	if n := doc.FinishTransitions(); n != 0 {
		t.Errorf("detached element transition finished: %d", n)
	}
}

func TestFocus(t *testing.T) {
	doc := NewDocument()
	doc.Mount(H("div", nil,
		H("button", map[string]string{"id": "a"}),
		H("button", map[string]string{"id": "b", "disabled": ""}),
		H("div", map[string]string{"id": "c", "tabindex": "0"}),
	))
	a := doc.ElementByID("a")

	var events []string
	doc.AddEventListener("focusin", func(ev *Event) { events = append(events, "in "+ev.Target().ID()) })
	doc.AddEventListener("focusout", func(ev *Event) { events = append(events, "out "+ev.Target().ID()) })

	a.Focus()
	doc.ElementByID("c").Focus()
	if got := doc.ActiveElement(); got == nil || got.ID() != "c" {
		t.Errorf("active = %v", got)
	}
	want := "in a,out a,in c"
	if strings.Join(events, ",") != want {
		t.Errorf("events = %v, want %s", events, want)
	}

	var ids []string
	for _, e := range doc.FocusableElements() {
		ids = append(ids, e.ID())
	}
	if strings.Join(ids, ",") != "a,c" {
		t.Errorf("focusable = %v", ids)
	}

	doc.ElementByID("c").Remove()
	if doc.ActiveElement() != nil {
		t.Error("removed element kept focus")
	}
}

type formControl struct {
	host     *Element
	internal *Internals
	resets   int
}

func (f *formControl) FormReset() { f.resets++ }

func TestFormData(t *testing.T) {
	doc := NewDocument()
	if err := doc.Define("x-field", func(host *Element) Behavior {
		return &formControl{host: host, internal: host.AttachInternals()}
	}); err != nil {
		t.Fatal(err)
	}
	form := doc.Mount(H("form", nil,
		H("x-field", map[string]string{"id": "a", "name": "a"}),
		H("x-field", map[string]string{"id": "b", "name": "b"}),
		H("x-field", map[string]string{"id": "c", "name": "c", "disabled": ""}),
		H("x-field", map[string]string{"id": "d"}),
		H("button", map[string]string{"id": "go", "name": "action", "value": "save"}),
	))
	for _, id := range []string{"a", "c", "d"} {
		doc.ElementByID(id).AttachInternals().SetFormValue("on")
	}

	var got FormData
	form.AddEventListener("submit", func(ev *Event) {
		got = ev.Detail.(SubmitEvent).Data
	})
	form.RequestSubmit(doc.ElementByID("go"))

	if len(got) != 2 {
		t.Fatalf("data = %v", got)
	}
	if v, ok := got.Get("a"); !ok || v != "on" {
		t.Errorf("a = %q, %v", v, ok)
	}
	if _, ok := got.Get("b"); ok {
		t.Error("b submitted without a value")
	}
	if v, _ := got.Get("action"); v != "save" {
		t.Errorf("action = %q", v)
	}

	form.ResetForm()
	if n := doc.ElementByID("a").Behavior().(*formControl).resets; n != 1 {
		t.Errorf("resets = %d", n)
	}
}

type sheet string

func (s sheet) CSSText() string { return string(s) }

func TestVNodeRendersShadowRoot(t *testing.T) {
	doc := NewDocument()
	host := doc.Mount(H("x-card", map[string]string{"id": "card"}, T("light")))
	root := host.AttachShadow()
	root.AdoptStyleSheets(sheet(":host{display:block}"), nil)
	root.Append(doc.Build(H("slot", nil)))
	host.SetStyleProperty("--h", "10px")

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(host.VNode())
	if err != nil {
		t.Fatal(err)
	}
	want := `<x-card id="card" style="--h: 10px"><template shadowrootmode="open"><style>:host{display:block}</style><slot></slot></template>light</x-card>`
	if html != want {
		t.Errorf("html =\n%s\nwant\n%s", html, want)
	}

	v := host.VNode(WithUIDs(), WithoutShadow())
	if eid, _ := v.Attr("data-eid"); eid != host.UID() {
		t.Errorf("data-eid = %q, want %q", eid, host.UID())
	}
}
