package collapsible

import (
	"testing"

	"github.com/vango-dev/elements/pkg/disclosure"
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/domtest"
)

func mount(t *testing.T, rootAttrs map[string]string, contentAttrs map[string]string) *domtest.Harness {
	t.Helper()
	h := domtest.New(t, Define)
	if rootAttrs == nil {
		rootAttrs = map[string]string{}
	}
	rootAttrs["id"] = "root"
	if contentAttrs == nil {
		contentAttrs = map[string]string{}
	}
	contentAttrs["id"] = "content"
	h.Mount(dom.H(TagRoot, rootAttrs,
		dom.H(TagTrigger, map[string]string{"id": "trigger"}, dom.T("Details")),
		dom.H(TagContent, contentAttrs,
			dom.Markup{Tag: "p", Height: 40},
			dom.Markup{Tag: "p", Height: 24},
		),
	))
	return h
}

func content(h *domtest.Harness) *Content {
	return domtest.Behavior[*Content](h, "content")
}

func TestMountOpenDoesNotAnimate(t *testing.T) {
	for _, attrs := range []map[string]string{
		{"default-open": ""},
		{"open": ""},
	} {
		h := mount(t, attrs, nil)
		c := content(h)

		obs := c.Observed()
		if len(obs) == 0 || obs[0] != disclosure.Open {
			t.Errorf("%v: observed %v, want first state open", attrs, obs)
		}
		for _, s := range obs {
			if s == disclosure.Opening {
				t.Errorf("%v: passed through opening", attrs)
			}
		}
		if h.Doc.RunningTransitions() != 0 {
			t.Errorf("%v: transition started on mount", attrs)
		}
		h.ExpectAttr("content", "data-state", "open")
		h.ExpectAttr("trigger", "aria-expanded", "true")
		h.ExpectNoAttr("content", "hidden")
	}
}

func TestToggleAnimatesAndSettles(t *testing.T) {
	h := mount(t, nil, nil)
	rec := h.Record(EventOpenChange)

	h.ExpectAttr("content", "data-state", "closed")
	h.ExpectAttr("content", "hidden", "")

	h.Click("trigger")
	h.ExpectAttr("content", "data-state", "opening")
	h.ExpectAttr("root", "data-state", "open")
	h.ExpectNoAttr("content", "hidden")
	if got := h.Get("content").StyleProperty(HeightProperty); got != "64px" {
		t.Errorf("height = %q, want 64px", got)
	}

	h.Settle()
	h.ExpectAttr("content", "data-state", "open")

	h.Press("trigger", dom.KeyEnter)
	h.ExpectAttr("content", "data-state", "closing")
	h.Settle()
	h.ExpectAttr("content", "data-state", "closed")
	h.ExpectAttr("content", "hidden", "")

	if rec.Len() != 2 {
		t.Fatalf("open-change events = %d, want 2", rec.Len())
	}
	if ev := rec.Events()[0]; ev.Target != "root" || ev.Detail != (OpenChange{Open: true}) {
		t.Errorf("first event = %+v", ev)
	}
}

func TestRapidTogglesEndOnLastRequest(t *testing.T) {
	for clicks := 1; clicks <= 5; clicks++ {
		h := mount(t, map[string]string{"default-open": ""}, nil)
		for i := 0; i < clicks; i++ {
			h.Click("trigger")
		}
		h.Settle()

		wantOpen := clicks%2 == 0
		want := "closed"
		if wantOpen {
			want = "open"
		}
		h.ExpectAttr("content", "data-state", want)
		if st := content(h).State(); st.Transient() {
			t.Errorf("%d clicks: stuck in %v", clicks, st)
		}
	}
}

func TestStaleTransitionEndIgnored(t *testing.T) {
	h := mount(t, nil, nil)
	h.Click("trigger")
	h.Settle()

	el := h.Get("content")
	el.Dispatch(&dom.Event{Type: "transitionend", Bubbles: true})
	h.Flush()
	h.ExpectAttr("content", "data-state", "open")

	// A transitionend from a child is not the content's own transition.
	h.Click("trigger")
	el.ElementChildren()[0].Dispatch(&dom.Event{Type: "transitionend", Bubbles: true})
	h.Flush()
	h.ExpectAttr("content", "data-state", "closing")
}

func TestControlledVeto(t *testing.T) {
	h := mount(t, map[string]string{"open": "false"}, nil)
	rec := h.Record(EventOpenChange)

	h.Click("trigger")
	h.Settle()
	if rec.Len() != 1 || rec.Last() != (OpenChange{Open: true}) {
		t.Errorf("events = %+v", rec.Events())
	}
	h.ExpectAttr("content", "data-state", "closed")

	// The owner accepts the change.
	h.Get("root").SetAttr("open", "true")
	h.Settle()
	h.ExpectAttr("content", "data-state", "open")
}

func TestDisabledIsSilent(t *testing.T) {
	h := mount(t, map[string]string{"disabled": ""}, nil)
	rec := h.Record(EventOpenChange)

	h.Click("trigger")
	h.Press("trigger", dom.KeySpace)
	h.Flush()

	if rec.Len() != 0 {
		t.Errorf("disabled collapsible emitted %d events", rec.Len())
	}
	h.ExpectAttr("content", "data-state", "closed")
	h.ExpectAttr("trigger", "data-disabled", "")
	if h.Doc.RunningTransitions() != 0 {
		t.Error("disabled collapsible started a transition")
	}
}

func TestDisabledTriggerIntentIgnored(t *testing.T) {
	h := mount(t, nil, nil)
	rec := h.Record(EventOpenChange)
	trigger := h.Get("trigger")
	trigger.SetAttr("disabled", "")
	h.Flush()

	trigger.Dispatch(dom.NewCustomEvent(toggleIntent.EventType(), struct{}{}))
	h.Settle()

	if rec.Len() != 0 {
		t.Errorf("intent from disabled trigger emitted %d events", rec.Len())
	}
	h.ExpectAttr("root", "data-state", "closed")
	h.ExpectAttr("content", "data-state", "closed")

	domtest.Behavior[*Collapsible](h, "root").Toggle()
	h.Settle()
	if rec.Len() != 1 {
		t.Errorf("root Toggle emitted %d events, want 1", rec.Len())
	}
}

func TestForceMountKeepsContentRendered(t *testing.T) {
	h := mount(t, nil, map[string]string{"force-mount": ""})
	el := h.Get("content")
	h.ExpectContains(el, "<slot></slot>")
	h.ExpectAttr("content", "hidden", "")

	plain := mount(t, nil, nil)
	plain.ExpectNotContains(plain.Get("content"), "<slot>")
}

func TestStandaloneContent(t *testing.T) {
	h := domtest.New(t, Define)
	h.Mount(dom.H(TagContent, map[string]string{"id": "content"}))
	h.Mount(dom.H(TagTrigger, map[string]string{"id": "trigger"}))

	h.Click("trigger")
	h.ExpectAttr("content", "data-state", "closed")
	h.ExpectNoAttr("trigger", "aria-expanded")
}

func TestLateContentSubscribes(t *testing.T) {
	h := mount(t, map[string]string{"default-open": ""}, nil)
	late := h.Doc.Build(dom.H(TagContent, map[string]string{"id": "late"}))
	h.Get("root").Append(late)
	h.Flush()
	h.ExpectAttr("late", "data-state", "open")

	h.Click("trigger")
	h.ExpectAttr("late", "data-state", "closing")

	late.Remove()
	h.Settle()
	if n := h.Doc.RunningTransitions(); n != 0 {
		t.Errorf("running transitions = %d", n)
	}
}
