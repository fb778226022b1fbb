// Package selection implements single-key selection for composite widgets
// such as tabs: an owner holds the selected key, accepts selection requests
// from its triggers, and pushes the result to every item it governs.
package selection

import "github.com/vango-dev/elements/pkg/state"

// Item is anything that mirrors the owner's selection.
type Item interface {
	Key() string
	SetSelected(selected bool)
}

// Controller holds the selected key. The key is a dual-state value: a
// controlled key (the owner's value attribute) wins over the uncontrolled
// one chosen by interaction or by default.
type Controller struct {
	cell state.Cell[string]
}

// Selected returns the selected key, or "" if none.
func (c *Controller) Selected() string {
	return c.cell.Read()
}

// Controlled reports whether the key is controlled.
func (c *Controller) Controlled() bool {
	return c.cell.Controlled()
}

// Adopt selects def when nothing is selected yet. It reports whether the
// selection changed.
func (c *Controller) Adopt(def string) bool {
	if def == "" || c.cell.Read() != "" {
		return false
	}
	return c.cell.SetFallback(def)
}

// SetDefault replaces the uncontrolled key, as a changed default-value does.
func (c *Controller) SetDefault(key string) bool {
	return c.cell.SetFallback(key)
}

// SetControlled makes key the controlled selection.
func (c *Controller) SetControlled(key string) bool {
	return c.cell.SetControlled(key)
}

// ClearControlled releases control of the selection.
func (c *Controller) ClearControlled() bool {
	return c.cell.ClearControlled()
}

// Request handles a selection intent for key. Requests for the key that is
// already selected, or for the empty key, do nothing and do not call emit.
// Otherwise emit is called with key and, unless the selection is
// controlled, key becomes selected. Request reports whether the selection
// changed.
func (c *Controller) Request(key string, emit func(key string)) bool {
	if key == "" || key == c.cell.Read() {
		return false
	}
	return c.cell.Request(key, emit)
}

// Push writes selected = (item.Key() == key) to every item.
func Push[I Item](key string, items ...I) {
	for _, it := range items {
		it.SetSelected(key != "" && it.Key() == key)
	}
}
