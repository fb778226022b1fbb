package playground

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/internal/stories"
	"github.com/vango-dev/elements/internal/telemetry"
	"github.com/vango-dev/elements/pkg/components"
	"github.com/vango-dev/elements/pkg/dom"
)

// Session is one mounted story driven by a client. Its document is only
// touched with mu held.
type Session struct {
	ID    string
	Story stories.Story

	mu         sync.Mutex
	doc        *dom.Document
	root       *dom.Element
	pending    []Event
	animate    bool
	lastActive time.Time
	closed     bool
	done       chan struct{}

	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewSession mounts st in a fresh document. With animate set, transitions
// keep running until a finish action; otherwise every action settles them.
func NewSession(st stories.Story, animate bool, metrics *telemetry.Metrics, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	id := newID()
	s := &Session{
		ID:         id,
		Story:      st,
		animate:    animate,
		lastActive: time.Now(),
		done:       make(chan struct{}),
		metrics:    metrics,
		logger:     logger.With("session_id", id, "story", st.Name),
	}
	if err := s.mount(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) mount() error {
	doc, err := stories.NewDocument(s.logger)
	if err != nil {
		return err
	}
	for _, info := range components.Catalog() {
		for _, typ := range info.Events {
			doc.AddEventListener(typ, s.record)
		}
	}
	if err := s.Story.Check(doc); err != nil {
		return err
	}
	root := doc.Mount(s.Story.Markup)
	s.doc, s.root, s.pending = doc, root, nil
	s.settle()
	return nil
}

func (s *Session) record(ev *dom.Event) {
	target := ""
	if t := ev.Target(); t != nil {
		target = t.ID()
	}
	s.pending = append(s.pending, Event{Type: ev.Type, Target: target, Detail: ev.Detail})
}

func (s *Session) settle() {
	if s.animate {
		s.doc.Flush()
		return
	}
	stories.Settle(s.doc)
}

// Apply performs a and returns the resulting state frame.
func (s *Session) Apply(ctx context.Context, a Action) (Frame, error) {
	_, span := telemetry.StartInteraction(ctx, s.ID, a.Type, a.Target)
	start := time.Now()
	frame, err := s.apply(a)
	s.metrics.ObserveInteraction(a.Type, time.Since(start), err)
	telemetry.End(span, err)
	return frame, err
}

func (s *Session) apply(a Action) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Frame{}, errors.Newf(errors.CategorySession, "session %s is closed", s.ID)
	}
	s.lastActive = time.Now()

	switch a.Type {
	case ActionRestart:
		if err := s.mount(); err != nil {
			return Frame{}, err
		}
		return s.stateLocked()
	case ActionFinish:
		s.doc.FinishTransitions()
		s.settle()
		return s.stateLocked()
	}

	el := s.doc.ElementByID(a.Target)
	if el == nil {
		return Frame{}, errors.New("E063").
			WithDetail("no element with id " + a.Target + " in story " + s.Story.Name)
	}

	switch a.Type {
	case ActionClick:
		el.Click()
	case ActionPress:
		el.Focus()
		el.Press(a.Key)
	case ActionInput:
		el.Input(a.Value)
	case ActionFocus:
		el.Focus()
	case ActionSetAttr:
		el.SetAttr(a.Name, a.Value)
	case ActionRemoveAttr:
		el.RemoveAttr(a.Name)
	}
	s.settle()
	s.logger.Debug("action applied", "type", a.Type, "target", a.Target, "events", len(s.pending))
	return s.stateLocked()
}

// State returns the current state frame without changing anything.
func (s *Session) State() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() (Frame, error) {
	html, err := stories.RenderElement(s.root)
	if err != nil {
		return Frame{}, err
	}
	f := Frame{
		Type:    FrameState,
		Session: s.ID,
		Story:   s.Story.Name,
		HTML:    html,
		Events:  s.pending,
	}
	if a := s.doc.ActiveElement(); a != nil {
		f.Focused = a.ID()
	}
	s.pending = nil
	return f, nil
}

// Document returns the session's document. Callers must not use it
// concurrently with Apply.
func (s *Session) Document() *dom.Document { return s.doc }

// LastActive returns the time of the most recent action.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Touch records client activity that is not an action, such as a frame
// that failed to decode.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// Close marks the session closed. Later actions fail and Done is closed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

// Done is closed when the session closes.
func (s *Session) Done() <-chan struct{} { return s.done }

func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return time.Now().Format("150405.000000000")
	}
	return hex.EncodeToString(b)
}
