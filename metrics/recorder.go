// Package metrics exports board transitions as Prometheus metrics.
package metrics

import (
	"strings"

	"github.com/plus3/marblecrush/marble"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marblecrush"

// Recorder is a loop.Observer that counts events and per-colour piece churn.
type Recorder struct {
	grid marble.Grid

	events    *prometheus.CounterVec
	cleared   *prometheus.CounterVec
	refilled  *prometheus.CounterVec
	pieces    prometheus.Gauge
	vacancies prometheus.Gauge
}

// NewRecorder registers the recorder's collectors on reg.
func NewRecorder(reg prometheus.Registerer, grid marble.Grid) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		grid: grid,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Events applied to the board, by kind.",
		}, []string{"kind"}),
		cleared: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_cleared_total",
			Help:      "Pieces removed by colour clears, by colour.",
		}, []string{"colour"}),
		refilled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_refilled_total",
			Help:      "Pieces placed by refills, by colour.",
		}, []string{"colour"}),
		pieces: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_pieces",
			Help:      "Pieces currently on the board.",
		}),
		vacancies: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_vacancies",
			Help:      "Grid cells currently without a piece.",
		}),
	}
}

// Transition implements loop.Observer.
func (r *Recorder) Transition(ev marble.Event, prev, next marble.Board) {
	r.events.WithLabelValues(marble.EventName(ev)).Inc()

	before, after := prev.ColourCounts(), next.ColourCounts()
	for _, c := range marble.Colours {
		label := colourLabel(c)
		switch delta := after[c] - before[c]; {
		case delta < 0:
			r.cleared.WithLabelValues(label).Add(float64(-delta))
		case delta > 0:
			r.refilled.WithLabelValues(label).Add(float64(delta))
		}
	}

	r.Observe(next)
}

// Observe sets the board gauges from b.
func (r *Recorder) Observe(b marble.Board) {
	r.pieces.Set(float64(b.Len()))
	r.vacancies.Set(float64(marble.EmptyLocations(b, r.grid)))
}

func colourLabel(c marble.Colour) string {
	return strings.ToLower(c.String())
}
