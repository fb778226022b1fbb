package dom

// Parent returns the parent node. For the top of a shadow tree this is the
// shadow root; for a shadow root it is nil.
func (e *Element) Parent() *Element { return e.parent }

// Host returns the host of a shadow root, or nil.
func (e *Element) Host() *Element { return e.host }

// ParentOrHost returns the parent, stepping from a shadow root to its host.
// Ancestor searches that must cross shadow boundaries follow this link.
func (e *Element) ParentOrHost() *Element {
	if e.kind == ShadowRootNode {
		return e.host
	}
	return e.parent
}

// Children returns a copy of the child nodes, including text nodes.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ElementChildren returns the child elements, skipping text nodes.
func (e *Element) ElementChildren() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if c.kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// IsConnected reports whether e is attached to its document.
func (e *Element) IsConnected() bool { return e.connected }

// Append appends children in order, moving them from any previous parent.
func (e *Element) Append(children ...*Element) {
	for _, c := range children {
		e.InsertBefore(c, nil)
	}
}

// InsertBefore inserts c before ref, or at the end when ref is nil or not a
// child of e.
func (e *Element) InsertBefore(c, ref *Element) {
	if c == nil || c == e || c.kind == ShadowRootNode || c.Contains(e) {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}

	idx := len(e.children)
	if ref != nil {
		for i, child := range e.children {
			if child == ref {
				idx = i
				break
			}
		}
	}
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = c
	c.parent = e

	if e.connected {
		c.connect()
	}
}

// RemoveChild detaches c from e.
func (e *Element) RemoveChild(c *Element) {
	for i, child := range e.children {
		if child == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			c.parent = nil
			if c.connected {
				c.disconnect()
			}
			return
		}
	}
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// ReplaceChildren removes all children and appends the given ones.
func (e *Element) ReplaceChildren(children ...*Element) {
	for len(e.children) > 0 {
		e.RemoveChild(e.children[len(e.children)-1])
	}
	e.Append(children...)
}

// AttachShadow attaches a shadow root to e, returning the existing one if it
// already has one.
func (e *Element) AttachShadow() *Element {
	if e.shadow != nil {
		return e.shadow
	}
	root := e.doc.newNode(ShadowRootNode, "#shadow-root")
	root.host = e
	e.shadow = root
	if e.connected {
		root.connect()
	}
	return root
}

// ShadowRoot returns the attached shadow root, or nil.
func (e *Element) ShadowRoot() *Element { return e.shadow }

// AdoptStyleSheets adds style sheets to a shadow root. Sheets already adopted
// are not added twice.
func (e *Element) AdoptStyleSheets(sheets ...StyleSheet) {
	for _, s := range sheets {
		if s == nil {
			continue
		}
		dup := false
		for _, have := range e.adopted {
			if have == s {
				dup = true
				break
			}
		}
		if !dup {
			e.adopted = append(e.adopted, s)
		}
	}
}

// AdoptedStyleSheets returns the style sheets adopted by a shadow root.
func (e *Element) AdoptedStyleSheets() []StyleSheet {
	out := make([]StyleSheet, len(e.adopted))
	copy(out, e.adopted)
	return out
}

// Contains reports whether other is e or a descendant of e, following shadow
// roots to their hosts.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.ParentOrHost() {
		if n == e {
			return true
		}
	}
	return false
}

// Closest returns the nearest inclusive ancestor matching fn, crossing shadow
// boundaries.
func (e *Element) Closest(match func(*Element) bool) *Element {
	for n := e; n != nil; n = n.ParentOrHost() {
		if n.kind == ElementNode && match(n) {
			return n
		}
	}
	return nil
}

// Walk visits e and its light descendants in document order. Returning false
// from fn skips the node's subtree.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children() {
		c.Walk(fn)
	}
}

// WalkComposed is Walk that also enters shadow roots, before light children.
func (e *Element) WalkComposed(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	if e.shadow != nil {
		e.shadow.WalkComposed(fn)
	}
	for _, c := range e.Children() {
		c.WalkComposed(fn)
	}
}

// QueryAll returns the light descendants of e (excluding e) matching fn in
// document order.
func (e *Element) QueryAll(match func(*Element) bool) []*Element {
	var out []*Element
	for _, c := range e.children {
		c.Walk(func(n *Element) bool {
			if n.kind == ElementNode && match(n) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// Query returns the first light descendant matching fn, or nil.
func (e *Element) Query(match func(*Element) bool) *Element {
	var found *Element
	for _, c := range e.children {
		c.Walk(func(n *Element) bool {
			if found != nil {
				return false
			}
			if n.kind == ElementNode && match(n) {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// MatchTag matches elements by tag name.
func MatchTag(tag string) func(*Element) bool {
	return func(e *Element) bool { return e.tag == tag }
}

// MatchID matches elements by id attribute.
func MatchID(id string) func(*Element) bool {
	return func(e *Element) bool { return id != "" && e.ID() == id }
}

// connect marks the subtree connected and runs Connected callbacks in tree
// order: the node, its shadow tree, then its light children.
func (e *Element) connect() {
	if e.connected {
		return
	}
	e.connected = true
	if c, ok := e.behavior.(Connector); ok {
		c.Connected()
	}
	if e.shadow != nil {
		e.shadow.connect()
	}
	for _, c := range e.Children() {
		if c.parent == e {
			c.connect()
		}
	}
}

// disconnect marks the subtree disconnected, drops focus and pending
// transitions held inside it, and runs Disconnected callbacks.
func (e *Element) disconnect() {
	if !e.connected {
		return
	}
	e.connected = false
	e.laidOut = false
	if e.doc != nil {
		if e.doc.active == e {
			e.doc.setActive(nil)
		}
		e.doc.dropTransition(e)
	}
	if d, ok := e.behavior.(Disconnector); ok {
		d.Disconnected()
	}
	if e.shadow != nil {
		e.shadow.disconnect()
	}
	for _, c := range e.Children() {
		c.disconnect()
	}
}
