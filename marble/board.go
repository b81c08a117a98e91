package marble

import (
	"iter"
	"slices"
	"strings"
)

// Board is an immutable, insertion-ordered collection of pieces.
// The zero value is an empty board. Every operation returns a new Board.
type Board struct {
	pieces []Piece
}

// NewBoard returns a board holding a copy of pieces, in order.
func NewBoard(pieces ...Piece) Board {
	if len(pieces) == 0 {
		return Board{}
	}
	return Board{pieces: slices.Clone(pieces)}
}

// Len returns the number of pieces on the board.
func (b Board) Len() int {
	return len(b.pieces)
}

// IsEmpty reports whether the board holds no pieces.
func (b Board) IsEmpty() bool {
	return len(b.pieces) == 0
}

// Pieces returns a copy of the pieces in insertion order.
func (b Board) Pieces() []Piece {
	return slices.Clone(b.pieces)
}

// At returns the i-th piece in insertion order. It panics if i is out of range.
func (b Board) At(i int) Piece {
	return b.pieces[i]
}

// All iterates over the pieces in insertion order.
func (b Board) All() iter.Seq2[int, Piece] {
	return func(yield func(int, Piece) bool) {
		for i, p := range b.pieces {
			if !yield(i, p) {
				return
			}
		}
	}
}

// PieceAt returns the first piece centred exactly on (x, y).
func (b Board) PieceAt(x, y int) (Piece, bool) {
	for _, p := range b.pieces {
		if p.X == x && p.Y == y {
			return p, true
		}
	}
	return Piece{}, false
}

// CountColour returns the number of pieces of colour c.
func (b Board) CountColour(c Colour) int {
	n := 0
	for _, p := range b.pieces {
		if p.Colour == c {
			n++
		}
	}
	return n
}

// ColourCounts returns the number of pieces of each colour, indexed by Colour.
func (b Board) ColourCounts() [ColourCount]int {
	var counts [ColourCount]int
	for _, p := range b.pieces {
		if p.Colour.Valid() {
			counts[p.Colour]++
		}
	}
	return counts
}

// Equal reports whether both boards hold the same pieces in the same order.
func (b Board) Equal(other Board) bool {
	return slices.Equal(b.pieces, other.pieces)
}

// with returns a board of b's pieces followed by extra.
func (b Board) with(extra []Piece) Board {
	if len(extra) == 0 {
		return b
	}
	pieces := make([]Piece, 0, len(b.pieces)+len(extra))
	pieces = append(pieces, b.pieces...)
	pieces = append(pieces, extra...)
	return Board{pieces: pieces}
}

func (b Board) String() string {
	parts := make([]string, len(b.pieces))
	for i, p := range b.pieces {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
