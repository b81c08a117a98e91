package sim

import "github.com/plus3/marblecrush/marble"

// tally accumulates per-colour churn across transitions.
type tally struct {
	cleared  [marble.ColourCount]int
	refilled [marble.ColourCount]int
	clears   int
}

func (t *tally) Transition(ev marble.Event, prev, next marble.Board) {
	before, after := prev.ColourCounts(), next.ColourCounts()
	removed := false
	for _, c := range marble.Colours {
		delta := after[c] - before[c]
		if delta < 0 {
			t.cleared[c] -= delta
			removed = true
		} else {
			t.refilled[c] += delta
		}
	}
	if removed {
		t.clears++
	}
}
