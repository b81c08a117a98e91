package loop

import "github.com/plus3/marblecrush/marble"

// Events buffers input produced during a frame. Buffered events are applied to the
// session in push order when the frame ends, so every system in a frame sees the same board.
type Events struct {
	pending []marble.Event
	defers  []func()
}

// NewEvents returns an empty buffer.
func NewEvents() *Events {
	return &Events{}
}

// Push queues ev.
func (e *Events) Push(ev marble.Event) {
	e.pending = append(e.pending, ev)
}

// Key queues a key event.
func (e *Events) Key(kind marble.KeyKind, key string) {
	e.Push(marble.KeyEvent{Kind: kind, Key: key})
}

// Pointer queues a pointer event at (x, y).
func (e *Events) Pointer(kind marble.PointerKind, x, y int) {
	e.Push(marble.PointerEvent{Kind: kind, X: x, Y: y})
}

// Defer queues fn to run after the frame's events have been applied.
func (e *Events) Defer(fn func()) {
	e.defers = append(e.defers, fn)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.pending)
}

// Flush applies the queued events to session followed by one Tick, runs deferred
// functions, and resets the buffer. It returns the number of transitions applied.
func (e *Events) Flush(session *Session) int {
	applied := 0
	for _, ev := range e.pending {
		session.Apply(ev)
		applied++
	}

	session.Apply(marble.Tick{})
	applied++

	for _, fn := range e.defers {
		fn()
	}

	clear(e.pending)
	e.pending = e.pending[:0]
	e.defers = e.defers[:0]
	return applied
}
