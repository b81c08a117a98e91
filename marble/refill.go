package marble

// Refill appends one new piece of a random colour at each coordinate of vacant, in order.
// Existing pieces keep their relative order ahead of the new ones. With no vacancies the
// board is returned as is.
func Refill(b Board, vacant []Point, src ColourSource) Board {
	if len(vacant) == 0 {
		return b
	}

	added := make([]Piece, len(vacant))
	for i, p := range vacant {
		added[i] = NewPiece(p, RandomColour(src))
	}
	return b.with(added)
}
