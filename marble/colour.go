package marble

import "math/rand/v2"

// Colour is the closed set of marble colours.
type Colour uint8

const (
	Blue Colour = iota
	Red
	Green
	Black
	ColourCount // Sentinel for iteration
)

// Colours lists every colour in declaration order.
var Colours = [ColourCount]Colour{Blue, Red, Green, Black}

// String returns the upper-case name of the colour.
func (c Colour) String() string {
	switch c {
	case Blue:
		return "BLUE"
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Black:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether c is one of the four marble colours.
func (c Colour) Valid() bool {
	return c < ColourCount
}

// ColourSource is a uniform discrete random source. IntN must return a value in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type ColourSource interface {
	IntN(n int) int
}

// NewColourSource returns a seeded PCG-backed source.
func NewColourSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomColour draws one colour uniformly from src.
func RandomColour(src ColourSource) Colour {
	return Colours[src.IntN(int(ColourCount))]
}
