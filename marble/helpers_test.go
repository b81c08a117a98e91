package marble_test

import "github.com/plus3/marblecrush/marble"

// sequenceSource returns the values of seq in order, wrapping around.
type sequenceSource struct {
	seq []int
	pos int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.seq[s.pos%len(s.seq)] % n
	s.pos++
	return v
}

// constSource always returns the same value.
type constSource int

func (c constSource) IntN(n int) int {
	return int(c) % n
}

func fullBoard(g marble.Grid, c marble.Colour) marble.Board {
	centers := g.Centers()
	pieces := make([]marble.Piece, len(centers))
	for i, p := range centers {
		pieces[i] = marble.NewPiece(p, c)
	}
	return marble.NewBoard(pieces...)
}
