// Package disclosure implements the open/close animation lifecycle of
// disclosure content.
//
// The owner of a disclosure only knows open or closed. Its content runs a
// Machine with two transient states in between, so that a rendered
// transition can play before the content settles:
//
//	closed --Set(true)--> opening --Finish--> open
//	open   --Set(false)-> closing --Finish--> closed
//
// Reversing direction mid-transition retargets immediately (opening to
// closing, closing to opening). Before the first paint every Set resolves
// directly to a steady state, so content mounted open never animates in.
package disclosure

// State is the animation state of disclosure content.
type State uint8

const (
	Closed State = iota
	Opening
	Open
	Closing
)

// String returns the data-state value for the state.
func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Transient reports whether the state waits for a transition to finish.
func (s State) Transient() bool {
	return s == Opening || s == Closing
}

// Visible reports whether content in this state is rendered.
func (s State) Visible() bool {
	return s != Closed
}

// Machine is the per-content animation state. The zero value is closed and
// unpainted.
type Machine struct {
	state   State
	painted bool
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Painted reports whether the first paint has happened.
func (m *Machine) Painted() bool { return m.painted }

// MarkPainted records that the content has been rendered once. Later changes
// animate.
func (m *Machine) MarkPainted() { m.painted = true }

// Set moves the machine toward open or closed and reports whether the state
// changed. Requests matching the current direction are ignored.
func (m *Machine) Set(open bool) bool {
	prev := m.state
	switch {
	case open && (m.state == Closed || m.state == Closing):
		if m.painted {
			m.state = Opening
		} else {
			m.state = Open
		}
	case !open && (m.state == Open || m.state == Opening):
		if m.painted {
			m.state = Closing
		} else {
			m.state = Closed
		}
	}
	return m.state != prev
}

// Finish handles a transition-finished signal and reports whether it was
// accepted. Signals arriving in a steady state belong to a transition that
// has since been retargeted or completed, and are ignored.
func (m *Machine) Finish() bool {
	switch m.state {
	case Opening:
		m.state = Open
	case Closing:
		m.state = Closed
	default:
		return false
	}
	return true
}

// Reset returns the machine to closed and unpainted, as on detach.
func (m *Machine) Reset() {
	m.state = Closed
	m.painted = false
}
