package loop

import "github.com/plus3/marblecrush/marble"

// Observer is notified after every transition with the event and the boards on either side of it.
type Observer interface {
	Transition(ev marble.Event, prev, next marble.Board)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev marble.Event, prev, next marble.Board)

func (f ObserverFunc) Transition(ev marble.Event, prev, next marble.Board) {
	f(ev, prev, next)
}

// Session owns the current board of one game and advances it through a controller.
// A Session is not safe for concurrent use.
type Session struct {
	controller  *marble.Controller
	board       marble.Board
	observers   []Observer
	transitions int64
}

// NewSession starts a session on the controller's initial board.
func NewSession(controller *marble.Controller) *Session {
	return &Session{
		controller: controller,
		board:      controller.Initial(),
	}
}

// Board returns the current board.
func (s *Session) Board() marble.Board {
	return s.board
}

// Grid returns the session's fixed grid parameters.
func (s *Session) Grid() marble.Grid {
	return s.controller.Grid()
}

// Controller returns the controller driving the session.
func (s *Session) Controller() *marble.Controller {
	return s.controller
}

// Transitions returns the number of events applied so far.
func (s *Session) Transitions() int64 {
	return s.transitions
}

// Observe registers o for every later transition.
func (s *Session) Observe(o Observer) {
	s.observers = append(s.observers, o)
}

// Apply advances the board by ev and returns the new board.
func (s *Session) Apply(ev marble.Event) marble.Board {
	prev := s.board
	s.board = s.controller.Step(prev, ev)
	s.transitions++

	for _, o := range s.observers {
		o.Transition(ev, prev, s.board)
	}
	return s.board
}
