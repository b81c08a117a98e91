package loop

import "github.com/plus3/marblecrush/marble"

// Frame is passed to every system during one scheduler pass.
type Frame struct {
	DeltaTime float64
	Board     marble.Board
	Grid      marble.Grid
	Events    *Events
}

func newFrame(dt float64, session *Session, events *Events) *Frame {
	return &Frame{
		DeltaTime: dt,
		Board:     session.Board(),
		Grid:      session.Grid(),
		Events:    events,
	}
}
