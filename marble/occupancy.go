package marble

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// cellKey packs a coordinate into a single integer: x in the upper 32 bits, y in the lower 32 bits.
// Coordinates outside the int32 range share keys, so the index stores the full point and
// compares it on lookup.
type cellKey uint64

func keyOf(p Point) cellKey {
	return cellKey(uint64(uint32(p.X))<<32 | uint64(uint32(p.Y)))
}

// Occupancy is the set of coordinates held by a board's pieces.
type Occupancy struct {
	cells *intmap.Map[cellKey, Point]
	// collided holds points whose key is already taken by a different point.
	collided []Point
	points   []Point
}

// Occupied projects every piece of b onto its coordinate.
func Occupied(b Board) *Occupancy {
	o := &Occupancy{
		cells:  intmap.New[cellKey, Point](max(b.Len(), 16)),
		points: make([]Point, 0, b.Len()),
	}
	for _, piece := range b.pieces {
		p := piece.Center()
		if o.Has(p) {
			continue
		}
		k := keyOf(p)
		if _, taken := o.cells.Get(k); taken {
			o.collided = append(o.collided, p)
		} else {
			o.cells.Put(k, p)
		}
		o.points = append(o.points, p)
	}
	return o
}

// Has reports whether some piece sits exactly at p.
func (o *Occupancy) Has(p Point) bool {
	if q, ok := o.cells.Get(keyOf(p)); ok && q == p {
		return true
	}
	return slices.Contains(o.collided, p)
}

// Len returns the number of distinct occupied coordinates.
func (o *Occupancy) Len() int {
	return len(o.points)
}

// Points returns the distinct occupied coordinates in first-seen order.
func (o *Occupancy) Points() []Point {
	return slices.Clone(o.points)
}

// Vacancies returns the grid cells not occupied by any piece of b, in row-major order.
func Vacancies(b Board, g Grid) []Point {
	occupied := Occupied(b)
	centers := g.Centers()

	vacant := make([]Point, 0, len(centers))
	for _, p := range centers {
		if !occupied.Has(p) {
			vacant = append(vacant, p)
		}
	}
	return vacant
}

// EmptyLocations returns the number of vacant cells of g on b.
func EmptyLocations(b Board, g Grid) int {
	return len(Vacancies(b, g))
}
