package owner

import "sync"

// Topic is an owner-to-descendants channel. Descendants subscribe when they
// connect and unsubscribe when they disconnect; the owner publishes after its
// own state has settled.
type Topic[T any] struct {
	mu     sync.Mutex
	subs   []*subscription[T]
	nextID uint64
}

type subscription[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Subscribe registers fn and returns a func that removes it. Calling the
// returned func more than once is harmless.
func (t *Topic[T]) Subscribe(fn func(T)) func() {
	t.mu.Lock()
	t.nextID++
	s := &subscription[T]{id: t.nextID, fn: fn, active: true}
	t.subs = append(t.subs, s)
	t.mu.Unlock()

	return func() { t.unsubscribe(s) }
}

func (t *Topic[T]) unsubscribe(s *subscription[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s.active = false
	for i, have := range t.subs {
		if have.id == s.id {
			t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers v to every subscriber in subscription order. Subscribers
// removed during delivery are not called.
func (t *Topic[T]) Publish(v T) {
	// Copy before notifying so subscribers may (un)subscribe.
	t.mu.Lock()
	subs := make([]*subscription[T], len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	for _, s := range subs {
		t.mu.Lock()
		active := s.active
		t.mu.Unlock()
		if active {
			s.fn(v)
		}
	}
}

// Len returns the number of subscribers.
func (t *Topic[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
