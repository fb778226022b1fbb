package dom

const defaultMaxFlushIterations = 1000

// Scheduler queues deferred work for a document. All queues are drained by
// Flush on the caller's goroutine; nothing runs concurrently.
//
// One iteration of Flush runs the pending update batch, performs a layout
// pass, runs the after-render callbacks queued so far and, once no updates
// are pending, the next-turn tasks queued so far.
type Scheduler struct {
	doc *Document

	updates     []*Element
	queued      map[*Element]bool
	afterRender []func()
	tasks       []func()

	maxIterations int
	flushing      bool
}

func newScheduler(doc *Document) *Scheduler {
	return &Scheduler{
		doc:           doc,
		queued:        make(map[*Element]bool),
		maxIterations: defaultMaxFlushIterations,
	}
}

// RequestUpdate queues el's Update for the next update batch. Requests for
// an element already queued are merged.
func (s *Scheduler) RequestUpdate(el *Element) {
	if el == nil || s.queued[el] {
		return
	}
	s.queued[el] = true
	s.updates = append(s.updates, el)
}

// AfterRender queues fn to run once the current update batch has been laid
// out.
func (s *Scheduler) AfterRender(fn func()) {
	s.afterRender = append(s.afterRender, fn)
}

// Defer queues fn for the next turn, after rendering has settled.
func (s *Scheduler) Defer(fn func()) {
	s.tasks = append(s.tasks, fn)
}

// Pending reports whether any work is queued.
func (s *Scheduler) Pending() bool {
	return len(s.updates) > 0 || len(s.afterRender) > 0 || len(s.tasks) > 0
}

// Flush runs queued work until the queues are empty, performing at least one
// layout pass. A nested call from inside queued work returns immediately.
// Flush gives up and drops the remaining work after the configured number of
// iterations.
func (s *Scheduler) Flush() {
	if s.flushing {
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	for i := 0; i == 0 || s.Pending(); i++ {
		if i >= s.maxIterations {
			s.doc.logger.Warn("scheduler flush did not settle",
				"iterations", i,
				"updates", len(s.updates),
				"after_render", len(s.afterRender),
				"tasks", len(s.tasks))
			s.updates, s.afterRender, s.tasks = nil, nil, nil
			s.queued = make(map[*Element]bool)
			return
		}

		s.runUpdates()
		s.doc.layout()

		callbacks := s.afterRender
		s.afterRender = nil
		for _, fn := range callbacks {
			fn()
		}

		if len(s.updates) > 0 {
			continue
		}

		tasks := s.tasks
		s.tasks = nil
		for _, fn := range tasks {
			fn()
		}
	}
}

func (s *Scheduler) runUpdates() {
	batch := s.updates
	s.updates = nil
	for _, el := range batch {
		delete(s.queued, el)
	}
	for _, el := range batch {
		if !el.connected {
			continue
		}
		if u, ok := el.behavior.(Updater); ok {
			u.Update()
		}
	}
}
