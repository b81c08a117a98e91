package marble

// ClearColour drops every piece sharing target's colour, wherever it is on the board,
// and keeps the rest in their original order. Adjacency plays no part.
func ClearColour(target Piece, b Board) Board {
	kept := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		if p.Colour != target.Colour {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(b.pieces) {
		return b
	}
	return Board{pieces: kept}
}
