package stories

import (
	"log/slog"
	"strings"

	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/pkg/components"
	"github.com/vango-dev/elements/pkg/dom"
	"github.com/vango-dev/elements/pkg/render"
)

// maxSettle bounds Settle so that a component that keeps restarting its
// transition cannot hang a request.
const maxSettle = 32

// NewDocument returns a document with every component defined.
func NewDocument(logger *slog.Logger) (*dom.Document, error) {
	var opts []dom.Option
	if logger != nil {
		opts = append(opts, dom.WithLogger(logger))
	}
	doc := dom.NewDocument(opts...)
	if err := components.Define(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Check reports an E122 error when the story uses a custom element that doc
// does not define.
func (st Story) Check(doc *dom.Document) error {
	var missing []string
	for _, tag := range st.Tags() {
		if !doc.Defined(tag) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return errors.New("E122").
			WithDetail("story " + st.Name + " uses " + strings.Join(missing, ", ")).
			WithSuggestion("Define the element or fix the tag name")
	}
	return nil
}

// Mount builds the story into doc's body and settles it.
func (st Story) Mount(doc *dom.Document) (*dom.Element, error) {
	if err := st.Check(doc); err != nil {
		return nil, err
	}
	el := doc.Mount(st.Markup)
	Settle(doc)
	return el, nil
}

// Settle flushes doc and completes running transitions until the tree is at
// rest.
func Settle(doc *dom.Document) {
	doc.Flush()
	for i := 0; i < maxSettle && doc.RunningTransitions() > 0; i++ {
		doc.FinishTransitions()
		doc.Flush()
	}
}

// Render mounts the story into a fresh document and returns its HTML,
// including declarative shadow roots.
func (st Story) Render(logger *slog.Logger, opts ...dom.VNodeOption) (string, error) {
	doc, err := NewDocument(logger)
	if err != nil {
		return "", err
	}
	el, err := st.Mount(doc)
	if err != nil {
		return "", err
	}
	return RenderElement(el, opts...)
}

// RenderElement returns the HTML of el.
func RenderElement(el *dom.Element, opts ...dom.VNodeOption) (string, error) {
	r := render.NewRenderer(render.RendererConfig{})
	return r.RenderToString(el.VNode(opts...))
}
