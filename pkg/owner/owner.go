// Package owner connects state owners with the descendants they govern.
//
// An owner is a custom element whose behavior holds canonical state for a
// cluster of descendants (a tabs root and its triggers, a collapsible and its
// content). The relation is positional: it is recomputed from the tree every
// time it is needed and never cached, so reparented or conditionally
// rendered descendants are always seen as they are now.
//
// Messages flow in two directions only. Descendants raise an Intent, a
// bubbling event with a typed payload that the nearest listening owner
// handles. Owners publish to a Topic that descendants subscribe to while
// connected.
package owner

import (
	"reflect"

	"github.com/vango-dev/elements/pkg/dom"
)

// Find returns the behavior of the nearest strict ancestor of el whose
// behavior is a T, crossing shadow boundaries from a shadow root to its host.
// The second result is false when no such ancestor exists; callers render in
// their standalone state.
func Find[T any](el *dom.Element) (T, bool) {
	var zero T
	if el == nil {
		return zero, false
	}
	for n := el.ParentOrHost(); n != nil; n = n.ParentOrHost() {
		if b, ok := n.Behavior().(T); ok {
			return b, true
		}
	}
	return zero, false
}

// FindElement is Find returning the owner's element.
func FindElement[T any](el *dom.Element) *dom.Element {
	if el == nil {
		return nil
	}
	for n := el.ParentOrHost(); n != nil; n = n.ParentOrHost() {
		if _, ok := n.Behavior().(T); ok {
			return n
		}
	}
	return nil
}

// Descendants returns the behaviors of type T in the light subtree of host,
// in document order. Subtrees of nested owners of the same kind as host are
// skipped: each descendant is governed by its nearest owner only.
func Descendants[T any](host *dom.Element) []T {
	if host == nil {
		return nil
	}
	ownerType := reflect.TypeOf(host.Behavior())

	var out []T
	for _, c := range host.Children() {
		c.Walk(func(n *dom.Element) bool {
			if ownerType != nil && reflect.TypeOf(n.Behavior()) == ownerType {
				return false
			}
			if b, ok := n.Behavior().(T); ok {
				out = append(out, b)
			}
			return true
		})
	}
	return out
}
