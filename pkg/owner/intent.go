package owner

import "github.com/vango-dev/elements/pkg/dom"

// Intent is a descendant-to-owner message type. Emitting dispatches a
// bubbling, composed event carrying the payload; the nearest ancestor that
// listens handles it and stops it there.
type Intent[T any] struct {
	name string
}

// NewIntent declares an intent carried by events of the given type.
func NewIntent[T any](eventType string) Intent[T] {
	return Intent[T]{name: eventType}
}

// EventType returns the event type the intent is carried by.
func (i Intent[T]) EventType() string { return i.name }

// Emit raises the intent from el. It reports whether an owner handled it.
func (i Intent[T]) Emit(el *dom.Element, payload T) bool {
	return !el.Dispatch(dom.NewCustomEvent(i.name, payload))
}

// Listen makes owner handle the intent for its subtree. fn receives the
// emitting element and the payload. The returned func stops listening.
func (i Intent[T]) Listen(owner *dom.Element, fn func(from *dom.Element, payload T)) func() {
	return owner.AddEventListener(i.name, func(ev *dom.Event) {
		payload, ok := ev.Detail.(T)
		if !ok {
			return
		}
		// Only the nearest owner handles an intent.
		ev.StopPropagation()
		ev.PreventDefault()
		fn(ev.OriginalTarget(), payload)
	})
}
