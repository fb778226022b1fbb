package button

import (
	"strings"
	"testing"

	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/domtest"
)

// field is a form-associated probe that submits its value attribute and
// counts resets.
type field struct {
	host   *dom.Element
	resets int
}

func (f *field) Connected() { f.host.AttachInternals().SetFormValue(f.host.GetAttr("value")) }
func (f *field) FormReset() { f.resets++ }

func defineField(doc *dom.Document) error {
	return doc.Define("x-field", func(host *dom.Element) dom.Behavior {
		return &field{host: host}
	})
}

func mountForm(t *testing.T, attrs map[string]string) (*domtest.Harness, *domtest.Recorder) {
	t.Helper()
	h := domtest.New(t, Define, defineField)
	attrs["id"] = "btn"
	h.Mount(dom.H("form", map[string]string{"id": "form"},
		dom.H("x-field", map[string]string{"id": "email", "name": "email", "value": "a@b.c"}),
		dom.H(Tag, attrs, dom.T("Go")),
	))
	return h, h.Record("submit")
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name    string
		attrs   map[string]string
		submits int
	}{
		{name: "default type submits", attrs: map[string]string{}, submits: 1},
		{name: "explicit submit", attrs: map[string]string{"type": "submit"}, submits: 1},
		{name: "plain button", attrs: map[string]string{"type": "button"}, submits: 0},
		{name: "reset", attrs: map[string]string{"type": "reset"}, submits: 0},
		{name: "disabled", attrs: map[string]string{"disabled": ""}, submits: 0},
		{name: "loading", attrs: map[string]string{"loading": ""}, submits: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, rec := mountForm(t, tt.attrs)
			h.Click("btn")
			if rec.Len() != tt.submits {
				t.Errorf("submits = %d, want %d", rec.Len(), tt.submits)
			}
		})
	}
}

func TestSubmitterValue(t *testing.T) {
	h, rec := mountForm(t, map[string]string{"name": "action", "value": "save"})
	h.Press("btn", dom.KeyEnter)

	if rec.Len() != 1 {
		t.Fatalf("submits = %d", rec.Len())
	}
	ev := rec.Last().(dom.SubmitEvent)
	if v, _ := ev.Data.Get("email"); v != "a@b.c" {
		t.Errorf("email = %q", v)
	}
	if v, _ := ev.Data.Get("action"); v != "save" {
		t.Errorf("action = %q", v)
	}
	if ev.Submitter != h.Get("btn") {
		t.Error("submitter not recorded")
	}
}

func TestReset(t *testing.T) {
	h, _ := mountForm(t, map[string]string{"type": "reset"})
	h.Press("btn", dom.KeySpace)
	if got := domtest.Behavior[*field](h, "email").resets; got != 1 {
		t.Errorf("resets = %d", got)
	}
}

func TestDisabledState(t *testing.T) {
	h := domtest.New(t, Define)
	h.Mount(dom.H(Tag, map[string]string{"id": "btn"}))
	h.ExpectAttr("btn", "tabindex", "0")
	h.ExpectNoAttr("btn", "aria-disabled")

	h.Get("btn").SetAttr("disabled", "")
	h.Flush()
	h.ExpectAttr("btn", "aria-disabled", "true")
	h.ExpectAttr("btn", "tabindex", "-1")
	h.ExpectAttr("btn", "data-disabled", "")
}

func TestClasses(t *testing.T) {
	tests := []struct {
		props map[string]string
		want  []string
	}{
		{props: nil, want: []string{"bg-primary", "h-10 px-4 py-2"}},
		{props: map[string]string{"variant": "outline", "size": "sm"}, want: []string{"border-input", "h-9"}},
		{props: map[string]string{"variant": "bogus", "size": "icon"}, want: []string{"bg-primary", "w-10"}},
	}
	for _, tt := range tests {
		got := Classes.Resolve(tt.props)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("Resolve(%v) = %q, missing %q", tt.props, got, w)
			}
		}
	}
}

func TestLoadingRendersSpinner(t *testing.T) {
	h := domtest.New(t, Define)
	el := h.Mount(dom.H(Tag, map[string]string{"id": "btn", "loading": ""}))
	h.ExpectContains(el, "animate-spin")
	h.ExpectAttr("btn", "aria-busy", "true")
}
