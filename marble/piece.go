package marble

import "fmt"

// Point is a pixel-space coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Piece is a coloured marble centred on a grid cell. Pieces are values and are never mutated.
type Piece struct {
	X, Y   int
	Colour Colour
}

// NewPiece creates a piece of the given colour at p.
func NewPiece(p Point, c Colour) Piece {
	return Piece{X: p.X, Y: p.Y, Colour: c}
}

// Center returns the piece's coordinate.
func (p Piece) Center() Point {
	return Point{X: p.X, Y: p.Y}
}

// Contains reports whether q lies in the piece's inclusive bounding box of half-width radius.
func (p Piece) Contains(q Point, radius int) bool {
	return q.X >= p.X-radius && q.X <= p.X+radius &&
		q.Y >= p.Y-radius && q.Y <= p.Y+radius
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Colour, p.X, p.Y)
}
