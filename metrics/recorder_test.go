package metrics_test

import (
	"strings"
	"testing"

	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
	"github.com/plus3/marblecrush/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redBlueSource populates RED, BLUE, RED and refills with BLACK.
type redBlueSource struct{ n int }

func (s *redBlueSource) IntN(n int) int {
	defer func() { s.n++ }()
	switch s.n {
	case 0, 2:
		return 1
	case 1:
		return 0
	default:
		return 3
	}
}

func TestRecorderTransitions(t *testing.T) {
	grid := marble.Grid{Radius: 10, Rows: 1, Cols: 3}
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg, grid)

	session := loop.NewSession(marble.NewController(grid, &redBlueSource{}))
	session.Observe(rec)

	session.Apply(marble.PointerEvent{Kind: marble.PrimaryClick, X: 50, Y: 10})
	session.Apply(marble.KeyEvent{Kind: marble.KeyPressed, Key: "r"})
	session.Apply(marble.Tick{})

	expected := `
# HELP marblecrush_events_total Events applied to the board, by kind.
# TYPE marblecrush_events_total counter
marblecrush_events_total{kind="key"} 1
marblecrush_events_total{kind="pointer"} 1
marblecrush_events_total{kind="tick"} 1
# HELP marblecrush_pieces_cleared_total Pieces removed by colour clears, by colour.
# TYPE marblecrush_pieces_cleared_total counter
marblecrush_pieces_cleared_total{colour="red"} 2
# HELP marblecrush_pieces_refilled_total Pieces placed by refills, by colour.
# TYPE marblecrush_pieces_refilled_total counter
marblecrush_pieces_refilled_total{colour="black"} 2
# HELP marblecrush_board_pieces Pieces currently on the board.
# TYPE marblecrush_board_pieces gauge
marblecrush_board_pieces 3
# HELP marblecrush_board_vacancies Grid cells currently without a piece.
# TYPE marblecrush_board_vacancies gauge
marblecrush_board_vacancies 0
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"marblecrush_events_total",
		"marblecrush_pieces_cleared_total",
		"marblecrush_pieces_refilled_total",
		"marblecrush_board_pieces",
		"marblecrush_board_vacancies",
	)
	assert.NoError(t, err)
}

func TestRecorderIdentityTransitions(t *testing.T) {
	grid := marble.Grid{Radius: 10, Rows: 2, Cols: 2}
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg, grid)

	b := marble.NewBoard(marble.Piece{X: 10, Y: 10, Colour: marble.Green})
	rec.Transition(marble.Tick{}, b, b)

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "marblecrush_events_total"))
	assert.Equal(t, 0, testutil.CollectAndCount(reg, "marblecrush_pieces_cleared_total"))
	assert.Equal(t, 0, testutil.CollectAndCount(reg, "marblecrush_pieces_refilled_total"))

	expected := `
# HELP marblecrush_board_vacancies Grid cells currently without a piece.
# TYPE marblecrush_board_vacancies gauge
marblecrush_board_vacancies 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "marblecrush_board_vacancies"))
}
