package loop_test

import (
	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
)

var testGrid = marble.Grid{Radius: 10, Rows: 1, Cols: 3}

// fixedSource cycles through seq.
type fixedSource struct {
	seq []int
	pos int
}

func (s *fixedSource) IntN(n int) int {
	v := s.seq[s.pos%len(s.seq)] % n
	s.pos++
	return v
}

// newTestSession starts a session on [RED@(10,10), BLUE@(30,10), RED@(50,10)] whose
// refills are always GREEN after the initial population.
func newTestSession() *loop.Session {
	src := &fixedSource{seq: []int{1, 0, 1, 2}}
	c := marble.NewController(testGrid, src)
	s := loop.NewSession(c)
	src.seq, src.pos = []int{2}, 0
	return s
}

type recordingObserver struct {
	events []marble.Event
	sizes  [][2]int
}

func (r *recordingObserver) Transition(ev marble.Event, prev, next marble.Board) {
	r.events = append(r.events, ev)
	r.sizes = append(r.sizes, [2]int{prev.Len(), next.Len()})
}

// clickSystem clicks at a fixed point on every frame.
type clickSystem struct {
	At           marble.Point
	ExecuteCount int
	SeenLen      []int
}

func (s *clickSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.SeenLen = append(s.SeenLen, frame.Board.Len())
	frame.Events.Pointer(marble.PrimaryClick, s.At.X, s.At.Y)
}

// refillSystem presses the refill key on every frame.
type refillSystem struct {
	ExecuteCount int
}

func (s *refillSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	frame.Events.Key(marble.KeyPressed, marble.DefaultRefillKey)
}
