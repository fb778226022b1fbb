package dom

// Event is dispatched through the tree.
type Event struct {
	Type     string
	Detail   any
	Bubbles  bool
	Composed bool

	target        *Element
	origin        *Element
	currentTarget *Element
	stopped       bool
	prevented     bool
}

// NewCustomEvent creates a bubbling event that crosses shadow boundaries.
// Components use it for both intent events and public change events.
func NewCustomEvent(typ string, detail any) *Event {
	return &Event{Type: typ, Detail: detail, Bubbles: true, Composed: true}
}

// Target returns the target as seen by the current listener; outside a
// shadow tree this is the host rather than the node inside it.
func (ev *Event) Target() *Element { return ev.target }

// OriginalTarget returns the node the event was dispatched on.
func (ev *Event) OriginalTarget() *Element { return ev.origin }

// CurrentTarget returns the node whose listener is running.
func (ev *Event) CurrentTarget() *Element { return ev.currentTarget }

// StopPropagation prevents the event from reaching further nodes. Listeners
// on the current node still run.
func (ev *Event) StopPropagation() { ev.stopped = true }

// PreventDefault marks the event as handled.
func (ev *Event) PreventDefault() { ev.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool { return ev.prevented }

// Key returns the key of a keyboard event, or "".
func (ev *Event) Key() string {
	if k, ok := ev.Detail.(KeyboardEvent); ok {
		return k.Key
	}
	return ""
}

// Listener handles an event.
type Listener func(ev *Event)

// ListenOption configures AddEventListener.
type ListenOption func(*listener)

// Once removes the listener after its first invocation.
func Once() ListenOption {
	return func(l *listener) { l.once = true }
}

type listener struct {
	fn      Listener
	once    bool
	removed bool
}

// AddEventListener registers fn for events of type typ on e. The returned
// func removes the listener; calling it more than once is harmless.
func (e *Element) AddEventListener(typ string, fn Listener, opts ...ListenOption) (remove func()) {
	l := &listener{fn: fn}
	for _, opt := range opts {
		opt(l)
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	e.listeners[typ] = append(e.listeners[typ], l)
	return func() { e.removeListener(typ, l) }
}

// ListenerCount returns the number of listeners registered for typ on e.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}

func (e *Element) removeListener(typ string, l *listener) {
	l.removed = true
	ls := e.listeners[typ]
	for i, have := range ls {
		if have == l {
			e.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to e and, for bubbling events, to its ancestors. It
// returns false if a listener called PreventDefault.
func (e *Element) Dispatch(ev *Event) bool {
	ev.origin = e
	ev.target = e
	ev.stopped = false

	for n := e; n != nil; {
		ev.currentTarget = n
		n.invoke(ev)
		if ev.stopped || !ev.Bubbles {
			break
		}
		if n.kind == ShadowRootNode {
			if !ev.Composed {
				break
			}
			// Retarget to the host for listeners outside the shadow tree.
			ev.target = n.host
			n = n.host
			continue
		}
		n = n.parent
	}

	ev.currentTarget = nil
	return !ev.prevented
}

func (e *Element) invoke(ev *Event) {
	ls := e.listeners[ev.Type]
	if len(ls) == 0 {
		return
	}
	snapshot := make([]*listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		if l.once {
			e.removeListener(ev.Type, l)
		}
		l.fn(ev)
	}
}

// Click dispatches a click event as a pointer activation would. Disabled
// state is not checked: behaviors guard against programmatic clicks.
func (e *Element) Click() bool {
	return e.Dispatch(&Event{Type: "click", Detail: MouseEvent{Detail: 1}, Bubbles: true, Composed: true})
}

// Press dispatches a keydown event for key.
func (e *Element) Press(key string) bool {
	return e.Dispatch(&Event{Type: "keydown", Detail: KeyboardEvent{Key: key}, Bubbles: true, Composed: true})
}

// Input dispatches an input event carrying value, as typing into a text
// field would.
func (e *Element) Input(value string) bool {
	return e.Dispatch(&Event{Type: "input", Detail: InputEvent{Value: value}, Bubbles: true, Composed: true})
}
