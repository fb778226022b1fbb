package dom

import "github.com/vango-dev/elements/pkg/vdom"

// VNodeOption configures Element.VNode.
type VNodeOption func(*vnodeConfig)

type vnodeConfig struct {
	uids       bool
	skipShadow bool
}

// WithUIDs writes each element's uid as a data-eid attribute, so that a
// client can address elements of a server-side tree.
func WithUIDs() VNodeOption {
	return func(c *vnodeConfig) { c.uids = true }
}

// WithoutShadow omits shadow roots.
func WithoutShadow() VNodeOption {
	return func(c *vnodeConfig) { c.skipShadow = true }
}

// VNode converts e and its subtree to a vdom tree. Shadow roots become
// declarative <template shadowrootmode="open"> elements whose adopted style
// sheets are written as <style> children.
func (e *Element) VNode(opts ...VNodeOption) *vdom.VNode {
	var cfg vnodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return e.vnode(&cfg)
}

func (e *Element) vnode(cfg *vnodeConfig) *vdom.VNode {
	switch e.kind {
	case TextNode:
		return vdom.Text(e.text)
	case ShadowRootNode:
		args := []any{vdom.AttrOf("shadowrootmode", "open")}
		for _, s := range e.adopted {
			args = append(args, vdom.Style(vdom.Text(s.CSSText())))
		}
		for _, c := range e.children {
			args = append(args, c.vnode(cfg))
		}
		return vdom.Template(args...)
	}

	if e.tag == "#document" {
		return vdom.Fragment(childVNodes(e, cfg))
	}

	args := make([]any, 0, len(e.attrs)+len(e.children)+2)
	for _, a := range e.attrs {
		args = append(args, vdom.AttrOf(a.Name, a.Value))
	}
	if len(e.style) > 0 {
		args = append(args, vdom.StyleAttr(e.StyleText()))
	}
	if cfg.uids {
		args = append(args, vdom.Data("eid", e.uid))
	}
	if e.shadow != nil && !cfg.skipShadow {
		args = append(args, e.shadow.vnode(cfg))
	}
	args = append(args, childVNodes(e, cfg))
	return vdom.El(e.tag, args...)
}

func childVNodes(e *Element, cfg *vnodeConfig) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(e.children))
	for _, c := range e.children {
		out = append(out, c.vnode(cfg))
	}
	return out
}
