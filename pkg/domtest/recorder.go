package domtest

import "github.com/vango-dev/elements/pkg/dom"

// Recorded is one observed event.
type Recorded struct {
	Target string
	Detail any
}

// Recorder collects events of one type that reach the document.
type Recorder struct {
	events []Recorded
	stop   func()
}

// Record starts collecting events of type typ.
//
// Example:
//
//	rec := h.Record("open-change")
//	h.Click("trigger")
//	if rec.Len() != 1 { ... }
func (h *Harness) Record(typ string) *Recorder {
	r := &Recorder{}
	r.stop = h.Doc.AddEventListener(typ, func(ev *dom.Event) {
		id := ""
		if t := ev.Target(); t != nil {
			id = t.ID()
		}
		r.events = append(r.events, Recorded{Target: id, Detail: ev.Detail})
	})
	return r
}

// Len returns the number of events seen.
func (r *Recorder) Len() int { return len(r.events) }

// Events returns the events seen so far.
func (r *Recorder) Events() []Recorded {
	out := make([]Recorded, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the detail of the most recent event, or nil.
func (r *Recorder) Last() any {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1].Detail
}

// Reset forgets the events seen so far.
func (r *Recorder) Reset() { r.events = nil }

// Stop stops recording.
func (r *Recorder) Stop() { r.stop() }
