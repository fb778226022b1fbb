// Package domtest provides testing helpers for elements.
//
// A Harness wraps a document with components defined, mounts markup, drives
// interaction, and asserts on reflected attributes and rendered output.
//
// # Quick Start
//
//	func TestToggle(t *testing.T) {
//	    h := domtest.New(t, toggle.Define)
//	    h.Mount(dom.H("ui-toggle", map[string]string{"id": "bold"}))
//	    rec := h.Record("pressed-change")
//
//	    h.Click("bold")
//
//	    h.ExpectAttr("bold", "data-state", "on")
//	    if rec.Len() != 1 {
//	        t.Errorf("events = %d", rec.Len())
//	    }
//	}
//
// # Transitions
//
// Transitions run until Settle (or dom.Document.FinishTransitions) ends
// them, so tests can observe transient states between Flush and Settle.
package domtest
