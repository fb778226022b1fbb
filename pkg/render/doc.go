// Package render serialises vdom trees to HTML.
//
// It is used by the documentation site to produce pages, and by story
// rendering to produce the markup of a live element tree (custom elements
// with declarative shadow roots).
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// Full documents are produced with RenderPage:
//
//	err := r.RenderPage(w, render.PageData{Title: "Tabs", Body: body})
//
// All text content and attribute values are escaped; attributes whose names
// cannot be written safely are dropped. Style and script bodies are the only
// verbatim output.
package render
