// Package dom is a single-threaded model of a browser render tree.
//
// A Document owns a tree of Elements. Elements carry attributes, inline style
// properties, light-DOM children and an optional shadow root. Tags registered
// with Document.Define are custom elements: creating one runs its
// Constructor, and the returned Behavior receives lifecycle callbacks through
// the optional Connector, Disconnector, AttributeObserver and Updater
// interfaces.
//
// # Events
//
// Events are dispatched to a target and, when Bubbles is set, to each
// ancestor. A shadow root is crossed into its host only for Composed events,
// and listeners outside the shadow tree see the host as the target.
//
// # Scheduling
//
// Nothing runs concurrently. Work that must wait for rendering is queued on
// the Document's Scheduler and drained by Flush:
//
//	doc.Scheduler().RequestUpdate(el) // batched Update() before layout
//	doc.Scheduler().AfterRender(fn)   // after the layout pass settles
//	doc.Scheduler().Defer(fn)         // next turn
//
// Layout and transitions are simulated. SetScrollHeight gives an element an
// intrinsic height; StartTransition marks a running transition that is ended
// by Document.FinishTransitions, which dispatches transitionend.
package dom
