package dom

// SetScrollHeight gives e an intrinsic height, replacing the sum of its
// children's heights.
func (e *Element) SetScrollHeight(h float64) {
	e.scrollHeight = h
	e.hasHeight = true
}

// ScrollHeight returns the laid-out height of e: its intrinsic height if
// set, otherwise the sum of its light children's heights. Elements that are
// not connected measure 0.
func (e *Element) ScrollHeight() float64 {
	if !e.connected {
		return 0
	}
	if e.hasHeight {
		return e.scrollHeight
	}
	var h float64
	for _, c := range e.children {
		h += c.ScrollHeight()
	}
	return h
}

// LaidOut reports whether a layout pass has covered e since it was
// connected. Measurements taken before then are not meaningful.
func (e *Element) LaidOut() bool { return e.laidOut }

// layout marks every connected node laid out.
func (d *Document) layout() {
	d.root.WalkComposed(func(n *Element) bool {
		n.laidOut = true
		return true
	})
}

// StartTransition marks e as running a rendered transition. It ends when the
// rendering engine (here FinishTransitions) dispatches transitionend.
func (e *Element) StartTransition() {
	if e.doc == nil || !e.connected {
		return
	}
	if !e.transitioning {
		e.transitioning = true
		e.doc.transitions = append(e.doc.transitions, e)
	}
}

// Transitioning reports whether e has a running transition.
func (e *Element) Transitioning() bool { return e.transitioning }

// RunningTransitions returns the number of elements with a running
// transition.
func (d *Document) RunningTransitions() int { return len(d.transitions) }

// FinishTransitions ends every running transition, dispatching a bubbling
// transitionend event to each element in the order the transitions started.
// It returns the number of events dispatched.
func (d *Document) FinishTransitions() int {
	running := d.transitions
	d.transitions = nil
	for _, e := range running {
		e.transitioning = false
		e.Dispatch(&Event{Type: "transitionend", Bubbles: true})
	}
	return len(running)
}

func (d *Document) dropTransition(e *Element) {
	if !e.transitioning {
		return
	}
	e.transitioning = false
	for i, have := range d.transitions {
		if have == e {
			d.transitions = append(d.transitions[:i], d.transitions[i+1:]...)
			return
		}
	}
}
