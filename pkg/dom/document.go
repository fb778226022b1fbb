package dom

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrAlreadyDefined is returned by Define for a tag that already has a
// constructor.
var ErrAlreadyDefined = errors.New("dom: element already defined")

// Document owns an element tree, its custom element definitions, focus and
// scheduling.
type Document struct {
	root *Element
	body *Element

	defs   map[string]Constructor
	active *Element
	sched  *Scheduler
	logger *slog.Logger

	transitions []*Element
	nextUID     uint64
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used by the document and by behaviors that ask
// their document for one.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxFlushIterations bounds the number of scheduler iterations a single
// Flush may run before giving up.
func WithMaxFlushIterations(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.sched.maxIterations = n
		}
	}
}

// NewDocument creates an empty document with a connected body.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		defs:   make(map[string]Constructor),
		logger: slog.Default(),
	}
	d.sched = newScheduler(d)
	for _, opt := range opts {
		opt(d)
	}

	d.root = d.newNode(ElementNode, "#document")
	d.root.connected = true
	d.body = d.newNode(ElementNode, "body")
	d.root.Append(d.body)
	return d
}

// Root returns the document node. Listeners registered here see every
// bubbling event.
func (d *Document) Root() *Element { return d.root }

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// Logger returns the document logger.
func (d *Document) Logger() *slog.Logger { return d.logger }

// Scheduler returns the document scheduler.
func (d *Document) Scheduler() *Scheduler { return d.sched }

// Flush drains the scheduler. See Scheduler.Flush.
func (d *Document) Flush() { d.sched.Flush() }

// Define registers a constructor for a custom element tag. Elements created
// afterwards with that tag are upgraded.
func (d *Document) Define(tag string, ctor Constructor) error {
	tag = strings.ToLower(tag)
	if !strings.Contains(tag, "-") {
		return fmt.Errorf("dom: custom element tag %q must contain a hyphen", tag)
	}
	if _, ok := d.defs[tag]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyDefined, tag)
	}
	d.defs[tag] = ctor
	d.logger.Debug("custom element defined", "tag", tag)
	return nil
}

// Defined reports whether tag has a constructor.
func (d *Document) Defined(tag string) bool {
	_, ok := d.defs[strings.ToLower(tag)]
	return ok
}

// CreateElement creates a disconnected element, running the tag's
// constructor if it is defined.
func (d *Document) CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	e := d.newNode(ElementNode, tag)
	if ctor, ok := d.defs[tag]; ok {
		e.behavior = ctor(e)
	}
	return e
}

// CreateText creates a disconnected text node.
func (d *Document) CreateText(s string) *Element {
	e := d.newNode(TextNode, "#text")
	e.text = s
	return e
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element { return d.active }

// ElementByID returns the first light-DOM element with the given id.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	return d.root.Query(MatchID(id))
}

// ElementByUID returns the connected element with the given uid, searching
// shadow trees too.
func (d *Document) ElementByUID(uid string) *Element {
	var found *Element
	d.root.WalkComposed(func(n *Element) bool {
		if found != nil {
			return false
		}
		if n.uid == uid {
			found = n
			return false
		}
		return true
	})
	return found
}

// AddEventListener registers a listener on the document node.
func (d *Document) AddEventListener(typ string, fn Listener, opts ...ListenOption) func() {
	return d.root.AddEventListener(typ, fn, opts...)
}

// FocusableElements returns the focusable elements in composed tree order.
func (d *Document) FocusableElements() []*Element {
	var out []*Element
	d.root.WalkComposed(func(n *Element) bool {
		if n.Focusable() {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (d *Document) newNode(kind NodeKind, tag string) *Element {
	d.nextUID++
	return &Element{
		doc:  d,
		uid:  fmt.Sprintf("e%d", d.nextUID),
		kind: kind,
		tag:  tag,
	}
}

func (d *Document) setActive(e *Element) {
	prev := d.active
	if prev == e {
		return
	}
	d.active = e
	if prev != nil {
		prev.Dispatch(&Event{Type: "blur"})
		prev.Dispatch(&Event{Type: "focusout", Bubbles: true, Composed: true})
	}
	if e != nil {
		e.Dispatch(&Event{Type: "focus"})
		e.Dispatch(&Event{Type: "focusin", Bubbles: true, Composed: true})
	}
}
