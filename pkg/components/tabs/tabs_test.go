package tabs

import (
	"testing"

	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/domtest"
)

type tab struct {
	key      string
	disabled bool
}

func mount(t *testing.T, rootAttrs map[string]string, tabs ...tab) *domtest.Harness {
	t.Helper()
	h := domtest.New(t, Define)
	if rootAttrs == nil {
		rootAttrs = map[string]string{}
	}
	rootAttrs["id"] = "root"

	var triggers, panels []dom.Markup
	for _, tb := range tabs {
		a := map[string]string{"id": "t-" + tb.key, "value": tb.key}
		if tb.disabled {
			a["disabled"] = ""
		}
		triggers = append(triggers, dom.H(TagTrigger, a, dom.T(tb.key)))
		panels = append(panels, dom.H(TagContent, map[string]string{"id": "c-" + tb.key, "value": tb.key}))
	}
	children := append([]dom.Markup{dom.H(TagList, map[string]string{"id": "list"}, triggers...)}, panels...)
	h.Mount(dom.H(TagRoot, rootAttrs, children...))
	return h
}

func activeCounts(h *domtest.Harness) (triggers, panels int) {
	root := domtest.Behavior[*Tabs](h, "root")
	for _, tr := range root.Triggers() {
		if tr.Host().GetAttr("data-state") == "active" {
			triggers++
		}
	}
	for _, c := range root.Contents() {
		if c.Host().GetAttr("data-state") == "active" {
			panels++
		}
	}
	return triggers, panels
}

func TestSelectPassword(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "account"}, tab{key: "account"}, tab{key: "password"})
	rec := h.Record(EventValueChange)

	h.Click("t-password")

	tr, pn := activeCounts(h)
	if tr != 1 || pn != 1 {
		t.Fatalf("active triggers %d, panels %d; want 1 and 1", tr, pn)
	}
	h.ExpectAttr("t-password", "data-state", "active")
	h.ExpectAttr("c-password", "data-state", "active")
	h.ExpectAttr("c-account", "hidden", "")
	h.ExpectNoAttr("c-password", "hidden")
	if rec.Len() != 1 || rec.Last() != (ValueChange{Value: "password"}) {
		t.Errorf("events = %+v", rec.Events())
	}
}

func TestReselectIsIdempotent(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "account"}, tab{key: "account"}, tab{key: "password"})
	rec := h.Record(EventValueChange)

	h.Click("t-account")
	h.Press("t-account", dom.KeyEnter)

	if rec.Len() != 0 {
		t.Errorf("re-selection emitted %d events", rec.Len())
	}
	h.ExpectAttr("t-account", "data-state", "active")
}

func TestDefaultIsFirstEnabledTrigger(t *testing.T) {
	h := mount(t, nil, tab{key: "a", disabled: true}, tab{key: "b"}, tab{key: "c"})
	if got := domtest.Behavior[*Tabs](h, "root").Value(); got != "b" {
		t.Errorf("default = %q, want b", got)
	}
	h.ExpectAttr("t-b", "tabindex", "0")
	h.ExpectAttr("t-a", "tabindex", "-1")
	h.ExpectAttr("t-c", "tabindex", "-1")
}

func TestDefaultValueChange(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "a"}, tab{key: "a"}, tab{key: "b"}, tab{key: "c"})
	rec := h.Record(EventValueChange)
	root := domtest.Behavior[*Tabs](h, "root")

	h.Get("root").SetAttr("default-value", "b")
	h.Flush()
	if got := root.Value(); got != "b" {
		t.Fatalf("value after default change = %q, want b", got)
	}
	h.ExpectAttr("c-b", "data-state", "active")
	if rec.Len() != 0 {
		t.Errorf("default change emitted %d events", rec.Len())
	}

	h.Click("t-c")
	h.Get("root").SetAttr("default-value", "a")
	h.Flush()
	if got := root.Value(); got != "c" {
		t.Errorf("value after interaction and default change = %q, want c", got)
	}
}

func TestDisabledTriggerCannotSelect(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "a"}, tab{key: "a"}, tab{key: "b", disabled: true})
	rec := h.Record(EventValueChange)

	h.Click("t-b")
	if rec.Len() != 0 {
		t.Errorf("disabled trigger emitted %d events", rec.Len())
	}
	h.ExpectAttr("t-b", "data-state", "inactive")
	h.ExpectAttr("t-b", "data-disabled", "")
}

func TestKeyboardNavigation(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "A"}, tab{key: "A"}, tab{key: "B", disabled: true}, tab{key: "C"})

	h.Press("t-A", dom.KeyArrowRight)
	if got := h.Focused(); got != "t-C" {
		t.Fatalf("focus = %q, want t-C", got)
	}
	h.ExpectAttr("c-C", "data-state", "active")
	h.ExpectAttr("t-C", "tabindex", "0")
	h.ExpectAttr("t-A", "tabindex", "-1")

	h.Get("t-C").Press(dom.KeyArrowRight)
	h.Flush()
	if got := h.Focused(); got != "t-A" {
		t.Errorf("focus = %q, want t-A after wrap", got)
	}
	h.ExpectAttr("c-A", "data-state", "active")
}

func TestVerticalAndNoLoop(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "A", "orientation": "vertical", "loop": "false"},
		tab{key: "A"}, tab{key: "B"})
	h.ExpectAttr("list", "aria-orientation", "vertical")

	h.Press("t-A", dom.KeyArrowRight)
	if got := h.Focused(); got != "t-A" {
		t.Errorf("horizontal key moved vertical tabs to %q", got)
	}
	h.Press("t-A", dom.KeyArrowDown)
	h.Get("t-B").Press(dom.KeyArrowDown)
	h.Flush()
	if got := h.Focused(); got != "t-B" {
		t.Errorf("focus = %q, want t-B at the end", got)
	}
}

func TestNoFocusNavigationIsNoop(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "A"}, tab{key: "A"}, tab{key: "B"})
	rec := h.Record(EventValueChange)

	h.Get("list").Press(dom.KeyArrowRight)
	h.Flush()
	if rec.Len() != 0 || h.Focused() != "" {
		t.Errorf("events %d, focus %q", rec.Len(), h.Focused())
	}
}

func TestControlledValue(t *testing.T) {
	h := mount(t, map[string]string{"value": "A"}, tab{key: "A"}, tab{key: "B"})
	rec := h.Record(EventValueChange)

	h.Click("t-B")
	if rec.Len() != 1 {
		t.Fatalf("events = %d", rec.Len())
	}
	h.ExpectAttr("c-A", "data-state", "active")

	h.Get("root").SetAttr("value", "B")
	h.Flush()
	h.ExpectAttr("c-B", "data-state", "active")
	h.ExpectAttr("t-A", "data-state", "inactive")
}

func TestUnmatchedContentNeverRenders(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "A"}, tab{key: "A"})
	orphan := h.Doc.Build(dom.H(TagContent, map[string]string{"id": "orphan", "value": "zzz"}, dom.T("never")))
	h.Get("root").Append(orphan)
	h.Flush()

	h.ExpectAttr("orphan", "data-state", "inactive")
	h.ExpectNotContains(orphan, "<slot>")

	orphan.SetAttr("force-mount", "")
	h.Flush()
	h.ExpectContains(orphan, "<slot></slot>")
}

func TestConditionalTriggerIsDiscovered(t *testing.T) {
	h := mount(t, map[string]string{"default-value": "A"}, tab{key: "A"})
	late := h.Doc.Build(dom.H(TagTrigger, map[string]string{"id": "t-late", "value": "late"}))
	h.Get("list").Append(late)
	h.Doc.Body().Append(h.Doc.Build(dom.H(TagContent, map[string]string{"id": "outside", "value": "late"})))
	h.Flush()

	h.Click("t-late")
	h.ExpectAttr("t-late", "data-state", "active")
	h.ExpectAttr("t-A", "data-state", "inactive")
	// Panels outside the root are not governed by it.
	h.ExpectAttr("outside", "data-state", "inactive")
}

func TestNestedTabsAreIndependent(t *testing.T) {
	h := domtest.New(t, Define)
	h.Mount(dom.H(TagRoot, map[string]string{"id": "outer", "default-value": "x"},
		dom.H(TagList, nil, dom.H(TagTrigger, map[string]string{"id": "ox", "value": "x"})),
		dom.H(TagContent, map[string]string{"value": "x"},
			dom.H(TagRoot, map[string]string{"id": "inner", "default-value": "x"},
				dom.H(TagList, nil,
					dom.H(TagTrigger, map[string]string{"id": "ix", "value": "x"}),
					dom.H(TagTrigger, map[string]string{"id": "iy", "value": "y"}),
				),
			),
		),
	))
	outer := h.Record(EventValueChange)

	h.Click("iy")
	if got := domtest.Behavior[*Tabs](h, "inner").Value(); got != "y" {
		t.Errorf("inner = %q", got)
	}
	if got := domtest.Behavior[*Tabs](h, "outer").Value(); got != "x" {
		t.Errorf("outer = %q", got)
	}
	if n := len(domtest.Behavior[*Tabs](h, "outer").Triggers()); n != 1 {
		t.Errorf("outer governs %d triggers", n)
	}
	if outer.Len() != 1 || outer.Events()[0].Target != "inner" {
		t.Errorf("events = %+v", outer.Events())
	}
}
