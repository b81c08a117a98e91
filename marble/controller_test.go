package marble_test

import (
	"testing"

	"github.com/plus3/marblecrush/marble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(opts ...marble.Option) *marble.Controller {
	return marble.NewController(marble.GridForArea(300, 500, 10), marble.NewColourSource(1), opts...)
}

func TestControllerInitial(t *testing.T) {
	c := newTestController()
	b := c.Initial()

	require.Equal(t, 375, b.Len())
	assert.Empty(t, marble.Vacancies(b, c.Grid()))

	centers := c.Grid().Centers()
	for i, p := range b.All() {
		assert.Equal(t, centers[i], p.Center())
		assert.True(t, p.Colour.Valid())
	}
}

func TestControllerInitialDegenerate(t *testing.T) {
	c := marble.NewController(marble.Grid{Radius: 10, Rows: 0, Cols: 15}, constSource(0))
	assert.True(t, c.Initial().IsEmpty())
}

func TestControllerTick(t *testing.T) {
	c := newTestController()
	b := c.Initial()
	assert.True(t, b.Equal(c.Step(b, marble.Tick{})))
}

func TestControllerKey(t *testing.T) {
	g := marble.Grid{Radius: 10, Rows: 2, Cols: 3}
	c := marble.NewController(g, constSource(2), marble.WithRefillKey("space"))
	b := marble.NewBoard(marble.Piece{X: 10, Y: 10, Colour: marble.Red})

	tests := []struct {
		name    string
		event   marble.KeyEvent
		refills bool
	}{
		{"refill key pressed", marble.KeyEvent{Kind: marble.KeyPressed, Key: "space"}, true},
		{"refill key released", marble.KeyEvent{Kind: marble.KeyReleased, Key: "space"}, false},
		{"other key pressed", marble.KeyEvent{Kind: marble.KeyPressed, Key: "r"}, false},
		{"case differs", marble.KeyEvent{Kind: marble.KeyPressed, Key: "SPACE"}, false},
		{"unknown kind", marble.KeyEvent{Kind: marble.KeyKind(9), Key: "space"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Step(b, tt.event)
			if !tt.refills {
				assert.True(t, b.Equal(got))
				return
			}
			assert.Equal(t, 6, got.Len())
			assert.Equal(t, b.At(0), got.At(0))
			assert.Equal(t, 5, got.CountColour(marble.Green))
			assert.Empty(t, marble.Vacancies(got, g))
		})
	}
}

func TestControllerPointer(t *testing.T) {
	g := marble.Grid{Radius: 10, Rows: 1, Cols: 3}
	c := marble.NewController(g, constSource(0))
	b := marble.NewBoard(
		marble.Piece{X: 10, Y: 10, Colour: marble.Red},
		marble.Piece{X: 30, Y: 10, Colour: marble.Blue},
		marble.Piece{X: 50, Y: 10, Colour: marble.Red},
	)

	t.Run("primary click clears colour", func(t *testing.T) {
		got := c.Step(b, marble.PointerEvent{Kind: marble.PrimaryClick, X: 55, Y: 3})
		assert.Equal(t, []marble.Piece{{X: 30, Y: 10, Colour: marble.Blue}}, got.Pieces())
	})

	t.Run("click misses", func(t *testing.T) {
		got := c.Step(b, marble.PointerEvent{Kind: marble.PrimaryClick, X: 10, Y: 40})
		assert.True(t, b.Equal(got))
	})

	t.Run("other pointer kind", func(t *testing.T) {
		got := c.Step(b, marble.PointerEvent{Kind: marble.PointerOther, X: 10, Y: 10})
		assert.True(t, b.Equal(got))
	})

	t.Run("unknown pointer kind", func(t *testing.T) {
		got := c.Step(b, marble.PointerEvent{Kind: marble.PointerKind(7), X: 10, Y: 10})
		assert.True(t, b.Equal(got))
	})
}

func TestControllerClearThenRefill(t *testing.T) {
	c := newTestController()
	b := c.Initial()
	target := b.At(0)
	before := b.CountColour(target.Colour)
	require.Positive(t, before)

	b = c.Step(b, marble.PointerEvent{Kind: marble.PrimaryClick, X: target.X, Y: target.Y})
	assert.Zero(t, b.CountColour(target.Colour))
	assert.Equal(t, before, marble.EmptyLocations(b, c.Grid()))

	b = c.Step(b, marble.KeyEvent{Kind: marble.KeyPressed, Key: marble.DefaultRefillKey})
	assert.Equal(t, 375, b.Len())
	assert.Zero(t, marble.EmptyLocations(b, c.Grid()))
}

type unknownEvent struct{ marble.Tick }

func TestControllerUnknownEvent(t *testing.T) {
	c := newTestController()
	b := c.Initial()
	assert.True(t, b.Equal(c.Step(b, nil)))
	assert.Equal(t, "unknown", marble.EventName(nil))
	assert.Equal(t, "tick", marble.EventName(marble.Tick{}))
	assert.Equal(t, "unknown", marble.EventName(unknownEvent{}))
	assert.True(t, b.Equal(c.Step(b, unknownEvent{})))
}
