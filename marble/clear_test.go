package marble_test

import (
	"testing"

	"github.com/plus3/marblecrush/marble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearColour(t *testing.T) {
	b := marble.NewBoard(
		marble.Piece{X: 10, Y: 10, Colour: marble.Red},
		marble.Piece{X: 30, Y: 10, Colour: marble.Blue},
		marble.Piece{X: 50, Y: 10, Colour: marble.Red},
	)

	target, ok := b.PieceAt(10, 10)
	require.True(t, ok)

	got := marble.ClearColour(target, b)
	assert.Equal(t, []marble.Piece{{X: 30, Y: 10, Colour: marble.Blue}}, got.Pieces())
	assert.Equal(t, 3, b.Len(), "input board must not change")
}

func TestClearColourIgnoresAdjacency(t *testing.T) {
	g := marble.Grid{Radius: 10, Rows: 5, Cols: 5}
	b := marble.Refill(marble.Board{}, g.Centers(), &sequenceSource{seq: []int{0, 1, 2, 3, 1}})

	target := b.At(0)
	got := marble.ClearColour(target, b)

	assert.Zero(t, got.CountColour(target.Colour))
	assert.Equal(t, b.Len()-b.CountColour(target.Colour), got.Len())

	var want []marble.Piece
	for _, p := range b.All() {
		if p.Colour != target.Colour {
			want = append(want, p)
		}
	}
	assert.Equal(t, want, got.Pieces())
}

func TestClearColourAbsent(t *testing.T) {
	b := marble.NewBoard(
		marble.Piece{X: 10, Y: 10, Colour: marble.Red},
		marble.Piece{X: 30, Y: 10, Colour: marble.Blue},
	)

	got := marble.ClearColour(marble.Piece{Colour: marble.Black}, b)
	assert.True(t, b.Equal(got))
}

func TestClearColourEverything(t *testing.T) {
	g := marble.Grid{Radius: 10, Rows: 2, Cols: 2}
	b := fullBoard(g, marble.Green)

	got := marble.ClearColour(b.At(3), b)
	assert.True(t, got.IsEmpty())
	assert.Len(t, marble.Vacancies(got, g), 4)
}
