package step

import (
	"encoding/json"
	"fmt"
	"iter"
)

// TracerOption configures a Tracer.
type TracerOption func(*Tracer)

// WithLimit caps the number of recorded events. A run that would exceed the
// cap leaves the trace unavailable. n <= 0 means no cap.
func WithLimit(n int) TracerOption {
	return func(t *Tracer) {
		if n > 0 {
			t.limit = n
		}
	}
}

// Tracer records events in chronological order. The zero value is not
// used directly: a nil *Tracer is the silent mode and NewTracer returns a
// traced recorder. A Tracer belongs to exactly one solver run and is not
// safe for concurrent use.
type Tracer struct {
	events []Event
	limit  int
	err    error
}

// NewTracer returns a recorder for one traced run.
func NewTracer(opts ...TracerOption) *Tracer {
	t := &Tracer{}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Enabled reports whether events are being recorded. Solvers guard event
// construction with it so the silent mode formats nothing.
func (t *Tracer) Enabled() bool {
	return t != nil && t.err == nil
}

// Emit validates and appends one event attached to pseudocode line (0 for
// none). On the first invalid event the tracer stops recording and
// remembers the failure.
func (t *Tracer) Emit(kind Kind, line int, description string, payload Payload, positions ...int) {
	if !t.Enabled() {
		return
	}
	ev, err := New(kind, description, payload, positions...)
	if err == nil {
		ev, err = ev.At(line)
	}
	t.push(ev, err)
}

// Record appends an event built elsewhere, typically with New and At. It is
// re-validated so hand-built values cannot slip through.
func (t *Tracer) Record(ev Event) {
	t.Emit(ev.Kind, ev.Line, ev.Description, ev.Payload, ev.Positions...)
}

func (t *Tracer) push(ev Event, err error) {
	if err != nil {
		t.err = fmt.Errorf("%w: %w", ErrTraceUnavailable, err)

		return
	}
	if t.limit > 0 && len(t.events) >= t.limit {
		t.err = fmt.Errorf("%w: more than %d events", ErrTraceUnavailable, t.limit)

		return
	}
	t.events = append(t.events, ev)
}

// Fail marks the trace unavailable with the given cause.
func (t *Tracer) Fail(cause error) {
	if t == nil || t.err != nil || cause == nil {
		return
	}
	t.err = fmt.Errorf("%w: %w", ErrTraceUnavailable, cause)
}

// Finish closes the recorder and returns the immutable Trace. A nil tracer
// finishes to a nil Trace. When recording failed the Trace carries no events.
func (t *Tracer) Finish() *Trace {
	if t == nil {
		return nil
	}
	if t.err != nil {
		return &Trace{err: t.err}
	}
	events := t.events
	t.events = nil

	return &Trace{events: events}
}

// Trace is a finished, ordered event sequence.
type Trace struct {
	events []Event
	err    error
}

// Available reports whether the trace completed.
func (tr *Trace) Available() bool {
	return tr != nil && tr.err == nil
}

// Err returns the reason the trace is unavailable, or nil.
func (tr *Trace) Err() error {
	if tr == nil {
		return fmt.Errorf("%w: run was not traced", ErrTraceUnavailable)
	}

	return tr.err
}

// Len returns the number of recorded events.
func (tr *Trace) Len() int {
	if tr == nil {
		return 0
	}

	return len(tr.events)
}

// Events returns a copy of the recorded events.
func (tr *Trace) Events() []Event {
	if tr == nil {
		return nil
	}

	return append([]Event(nil), tr.events...)
}

// Kinds returns the kind of every event, in order.
func (tr *Trace) Kinds() []Kind {
	if tr == nil {
		return nil
	}
	out := make([]Kind, len(tr.events))
	for i, ev := range tr.events {
		out[i] = ev.Kind
	}

	return out
}

// Cursor returns a fresh forward-only reader over the events.
func (tr *Trace) Cursor() *Cursor {
	c := &Cursor{}
	if tr != nil {
		c.events = tr.events
	}

	return c
}

// All returns a single-use sequence of the events. Ranging over it a
// second time yields nothing; take a new sequence from the Trace instead.
func (tr *Trace) All() iter.Seq[Event] {
	c := tr.Cursor()

	return func(yield func(Event) bool) {
		for {
			ev, ok := c.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// MarshalJSON encodes the trace as a JSON array of events. An unavailable
// trace fails to marshal rather than producing a partial array.
func (tr *Trace) MarshalJSON() ([]byte, error) {
	if err := tr.Err(); err != nil {
		return nil, err
	}
	if len(tr.events) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(tr.events)
}

// Cursor walks a Trace once. It cannot be rewound.
type Cursor struct {
	events []Event
	pos    int
}

// Next returns the next event and true, or false once exhausted.
func (c *Cursor) Next() (Event, bool) {
	if c.pos >= len(c.events) {
		return Event{}, false
	}
	ev := c.events[c.pos]
	c.pos++

	return ev, true
}

// Remaining returns how many events are left.
func (c *Cursor) Remaining() int {
	return len(c.events) - c.pos
}
