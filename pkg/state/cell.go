// Package state provides the dual-state value cell behind controlled and
// uncontrolled widget values.
//
// A Cell holds an optional controlled value and a fallback value. When the
// controlled value is present it is authoritative and interaction never
// mutates the fallback; the change is still reported so that the controlling
// owner can accept it by writing a new controlled value, or veto it by doing
// nothing. When absent, the fallback is authoritative and interaction writes
// it directly.
//
//	c := state.NewCell(false) // default-checked="false"
//	state.RequestToggle(c, disabled, func(next bool) { emitCheckedChange(next) })
package state

// Cell is a dual-state value. The zero value is an uncontrolled cell holding
// V's zero value.
type Cell[V comparable] struct {
	controlled    V
	hasControlled bool
	fallback      V
}

// NewCell creates an uncontrolled cell whose fallback is def.
func NewCell[V comparable](def V) *Cell[V] {
	return &Cell[V]{fallback: def}
}

// Read returns the controlled value if set, otherwise the fallback.
func (c *Cell[V]) Read() V {
	if c.hasControlled {
		return c.controlled
	}
	return c.fallback
}

// Controlled reports whether an external owner controls the value.
func (c *Cell[V]) Controlled() bool {
	return c.hasControlled
}

// SetControlled makes v the authoritative value. It reports whether Read
// changed as a result.
func (c *Cell[V]) SetControlled(v V) bool {
	prev := c.Read()
	c.controlled = v
	c.hasControlled = true
	return prev != v
}

// ClearControlled releases control; Read falls back to the fallback value.
// It reports whether Read changed as a result.
func (c *Cell[V]) ClearControlled() bool {
	if !c.hasControlled {
		return false
	}
	prev := c.controlled
	var zero V
	c.controlled = zero
	c.hasControlled = false
	return prev != c.fallback
}

// Fallback returns the uncontrolled value, whether or not it is authoritative.
func (c *Cell[V]) Fallback() V {
	return c.fallback
}

// SetFallback replaces the fallback value, as a default-* attribute or a form
// reset does. It reports whether Read changed as a result.
func (c *Cell[V]) SetFallback(v V) bool {
	prev := c.Read()
	c.fallback = v
	return !c.hasControlled && prev != v
}

// Request applies an interaction proposing next. The fallback is written only
// when the cell is uncontrolled; emit is called with next in both cases so a
// controlling owner can observe the request. Request reports whether Read
// changed.
func (c *Cell[V]) Request(next V, emit func(next V)) bool {
	prev := c.Read()
	if !c.hasControlled {
		c.fallback = next
	}
	if emit != nil {
		emit(next)
	}
	return c.Read() != prev
}

// RequestToggle requests the negation of a boolean cell. Nothing happens, and
// emit is not called, while disabled.
func RequestToggle(c *Cell[bool], disabled bool, emit func(next bool)) bool {
	if disabled {
		return false
	}
	return c.Request(!c.Read(), emit)
}
