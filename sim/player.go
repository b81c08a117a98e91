// Package sim plays Marble Crush headlessly and reports on the run.
package sim

import (
	"math/rand/v2"

	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
)

// Player is a system that pushes exactly one event per frame: a refill key press, or a
// primary click at a uniformly random pixel of the board area, edges included.
type Player struct {
	Rand      *rand.Rand
	RefillKey string

	// RefillChance is the probability of pressing the refill key on any frame.
	RefillChance float64

	// RefillThreshold forces a refill once this fraction of the grid is vacant. Zero disables it.
	RefillThreshold float64

	Clicks  int64
	Refills int64
}

func (p *Player) Execute(frame *loop.Frame) {
	if p.wantsRefill(frame) {
		frame.Events.Key(marble.KeyPressed, p.RefillKey)
		p.Refills++
		return
	}

	x := p.Rand.IntN(frame.Grid.Width() + 1)
	y := p.Rand.IntN(frame.Grid.Height() + 1)
	frame.Events.Pointer(marble.PrimaryClick, x, y)
	p.Clicks++
}

func (p *Player) wantsRefill(frame *loop.Frame) bool {
	size := frame.Grid.Size()
	if size == 0 {
		return false
	}

	if p.RefillThreshold > 0 {
		vacant := marble.EmptyLocations(frame.Board, frame.Grid)
		if vacant > 0 && float64(vacant) >= p.RefillThreshold*float64(size) {
			return true
		}
	}
	return p.Rand.Float64() < p.RefillChance
}
