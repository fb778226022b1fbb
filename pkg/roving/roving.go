// Package roving implements roving-tabindex keyboard navigation across a
// live set of items.
//
// Exactly one enabled item is in the tab sequence (tabindex 0); every other
// item has tabindex -1. Arrow keys, Home and End move focus among the
// enabled items, skipping disabled ones, and activate the new target so that
// focus and selection move together.
package roving

import "github.com/vango-dev/elements/pkg/dom"

// Orientation selects which arrow keys navigate.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
	Both       Orientation = "both"
)

// Direction is the reading direction; right-to-left swaps left and right.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Item is a navigable element.
type Item interface {
	Host() *dom.Element
	Disabled() bool
	Selected() bool
}

// Controller navigates the items returned by Items. The set is queried on
// every call, never cached.
type Controller[I Item] struct {
	Items       func() []I
	Orientation Orientation
	Dir         Direction

	// NoLoop stops navigation at either end instead of wrapping.
	NoLoop bool

	// Activate runs on the new target after it is focused. It defaults to a
	// click on the target's host.
	Activate func(I)
}

type action uint8

const (
	none action = iota
	next
	prev
	first
	last
)

func (c *Controller[I]) action(key string) action {
	horizontal := c.Orientation != Vertical
	vertical := c.Orientation == Vertical || c.Orientation == Both

	switch key {
	case dom.KeyArrowRight, dom.KeyArrowLeft:
		if !horizontal {
			return none
		}
		forward := key == dom.KeyArrowRight
		if c.Dir == RTL {
			forward = !forward
		}
		if forward {
			return next
		}
		return prev
	case dom.KeyArrowDown:
		if vertical {
			return next
		}
	case dom.KeyArrowUp:
		if vertical {
			return prev
		}
	case dom.KeyHome:
		return first
	case dom.KeyEnd:
		return last
	}
	return none
}

func (c *Controller[I]) enabled() []I {
	if c.Items == nil {
		return nil
	}
	var out []I
	for _, it := range c.Items() {
		if !it.Disabled() {
			out = append(out, it)
		}
	}
	return out
}

// Reset puts the selected item, if enabled, or else the first enabled item
// in the tab sequence. With no enabled items the controller is inert.
func (c *Controller[I]) Reset() {
	enabled := c.enabled()
	if len(enabled) == 0 {
		return
	}
	target := enabled[0]
	for _, it := range enabled {
		if it.Selected() {
			target = it
			break
		}
	}
	c.assign(target.Host())
}

// Handle processes a key press and reports whether the key was consumed.
// Keys without a navigation meaning, an empty enabled set, and presses
// while no item has focus are ignored without side effects.
func (c *Controller[I]) Handle(key string) bool {
	act := c.action(key)
	if act == none {
		return false
	}
	enabled := c.enabled()
	n := len(enabled)
	if n == 0 {
		return false
	}

	current := -1
	for i, it := range enabled {
		if it.Host().Focused() {
			current = i
			break
		}
	}
	if current < 0 {
		return false
	}

	target := current
	switch act {
	case next:
		target = current + 1
		if target >= n {
			if c.NoLoop {
				target = n - 1
			} else {
				target = 0
			}
		}
	case prev:
		target = current - 1
		if target < 0 {
			if c.NoLoop {
				target = 0
			} else {
				target = n - 1
			}
		}
	case first:
		target = 0
	case last:
		target = n - 1
	}
	if target == current {
		return true
	}

	it := enabled[target]
	c.assign(it.Host())
	it.Host().Focus()
	if c.Activate != nil {
		c.Activate(it)
	} else {
		it.Host().Click()
	}
	return true
}

// assign gives target tabindex 0 and every other item -1, disabled ones
// included.
func (c *Controller[I]) assign(target *dom.Element) {
	for _, it := range c.Items() {
		h := it.Host()
		if h == target {
			h.SetTabIndex(0)
		} else {
			h.SetTabIndex(-1)
		}
	}
}
