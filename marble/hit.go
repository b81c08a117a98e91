package marble

// FindHit returns the first piece, in insertion order, whose inclusive bounding box
// [x-radius, x+radius] x [y-radius, y+radius] contains p.
func FindHit(p Point, b Board, radius int) (Piece, bool) {
	for _, piece := range b.pieces {
		if piece.Contains(p, radius) {
			return piece, true
		}
	}
	return Piece{}, false
}
