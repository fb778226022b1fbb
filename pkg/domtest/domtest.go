package domtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/element"
	"github.com/vango-dev/elements/pkg/render"
)

// Harness is a document prepared for a test.
type Harness struct {
	tb  testing.TB
	Doc *dom.Document
}

// New creates a document with the given components defined. Document logs
// are discarded.
//
// Example:
//
//	h := domtest.New(t, collapsible.Define)
func New(tb testing.TB, defines ...element.DefineFunc) *Harness {
	tb.Helper()
	doc := dom.NewDocument(dom.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	for _, define := range defines {
		if err := define(doc); err != nil {
			tb.Fatalf("define: %v", err)
		}
	}
	return &Harness{tb: tb, Doc: doc}
}

// Mount builds m into the body and flushes.
//
// Example:
//
//	h.Mount(dom.H("ui-toggle", map[string]string{"id": "bold"}))
func (h *Harness) Mount(m dom.Markup) *dom.Element {
	el := h.Doc.Mount(m)
	h.Doc.Flush()
	return el
}

// Flush drains the scheduler.
func (h *Harness) Flush() { h.Doc.Flush() }

// Settle flushes and completes every running transition until none remain.
func (h *Harness) Settle() {
	h.Doc.Flush()
	for i := 0; h.Doc.RunningTransitions() > 0; i++ {
		if i > 100 {
			h.tb.Fatalf("transitions did not settle")
		}
		h.Doc.FinishTransitions()
		h.Doc.Flush()
	}
}

// Get returns the element with id, failing the test if it does not exist.
func (h *Harness) Get(id string) *dom.Element {
	h.tb.Helper()
	el := h.Doc.ElementByID(id)
	if el == nil {
		h.tb.Fatalf("no element with id %q", id)
	}
	return el
}

// Click clicks the element with id and flushes.
func (h *Harness) Click(id string) {
	h.tb.Helper()
	h.Get(id).Click()
	h.Doc.Flush()
}

// Press focuses the element with id, presses key on it and flushes.
func (h *Harness) Press(id, key string) {
	h.tb.Helper()
	el := h.Get(id)
	el.Focus()
	el.Press(key)
	h.Doc.Flush()
}

// Input dispatches an input event with value on the element with id and
// flushes.
func (h *Harness) Input(id, value string) {
	h.tb.Helper()
	h.Get(id).Input(value)
	h.Doc.Flush()
}

// Behavior returns the behavior of the element with id as a T.
func Behavior[T any](h *Harness, id string) T {
	h.tb.Helper()
	b, ok := h.Get(id).Behavior().(T)
	if !ok {
		h.tb.Fatalf("element %q has behavior %T", id, h.Get(id).Behavior())
	}
	return b
}

// Focused returns the id of the active element, or "".
func (h *Harness) Focused() string {
	if a := h.Doc.ActiveElement(); a != nil {
		return a.ID()
	}
	return ""
}

// HTML renders the element, including shadow roots.
func (h *Harness) HTML(el *dom.Element) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(el.VNode())
	if err != nil {
		h.tb.Fatalf("render: %v", err)
	}
	return html
}

// ExpectAttr asserts that the element with id has attribute name set to
// value.
//
// Example:
//
//	h.ExpectAttr("trigger", "data-state", "open")
func (h *Harness) ExpectAttr(id, name, value string) {
	h.tb.Helper()
	got, ok := h.Get(id).Attr(name)
	if !ok {
		h.tb.Errorf("%s: attribute %s missing, want %q", id, name, value)
		return
	}
	if got != value {
		h.tb.Errorf("%s: %s = %q, want %q", id, name, got, value)
	}
}

// ExpectNoAttr asserts that the element with id lacks attribute name.
func (h *Harness) ExpectNoAttr(id, name string) {
	h.tb.Helper()
	if got, ok := h.Get(id).Attr(name); ok {
		h.tb.Errorf("%s: unexpected attribute %s=%q", id, name, got)
	}
}

// ExpectContains asserts that the rendered element contains expected.
func (h *Harness) ExpectContains(el *dom.Element, expected string) {
	h.tb.Helper()
	html := h.HTML(el)
	if !strings.Contains(html, expected) {
		h.tb.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered element does not contain
// unexpected.
func (h *Harness) ExpectNotContains(el *dom.Element, unexpected string) {
	h.tb.Helper()
	html := h.HTML(el)
	if strings.Contains(html, unexpected) {
		h.tb.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
