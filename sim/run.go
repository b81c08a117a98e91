package sim

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
	"github.com/plus3/marblecrush/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNoFrames is returned when a run is asked for fewer than one frame.
var ErrNoFrames = errors.New("sim: frame count must be positive")

// Options configures a headless run.
type Options struct {
	Grid            marble.Grid
	RefillKey       string
	Seed            uint64
	Frames          int
	RefillChance    float64
	RefillThreshold float64

	// Registerer receives the run's metrics when set.
	Registerer prometheus.Registerer
}

// DefaultOptions returns options for a short run on grid g.
func DefaultOptions(g marble.Grid) Options {
	return Options{
		Grid:            g,
		RefillKey:       marble.DefaultRefillKey,
		Frames:          1000,
		RefillChance:    0.1,
		RefillThreshold: 0.5,
	}
}

// Run plays opts.Frames frames, or until ctx is done, and reports on the run.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (*Report, error) {
	if opts.Frames <= 0 {
		return nil, ErrNoFrames
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	controller := marble.NewController(opts.Grid, marble.NewColourSource(opts.Seed), marble.WithRefillKey(opts.RefillKey))
	session := loop.NewSession(controller)

	counts := &tally{}
	session.Observe(counts)
	if opts.Registerer != nil {
		recorder := metrics.NewRecorder(opts.Registerer, opts.Grid)
		recorder.Observe(session.Board())
		session.Observe(recorder)
	}

	player := &Player{
		Rand:            rand.New(rand.NewPCG(opts.Seed, opts.Seed+1)),
		RefillKey:       opts.RefillKey,
		RefillChance:    opts.RefillChance,
		RefillThreshold: opts.RefillThreshold,
	}
	scheduler := loop.NewScheduler(session)
	scheduler.Register(player)

	report := &Report{
		Frames: opts.Frames,
		Grid:   opts.Grid,
		Seed:   opts.Seed,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, opts.Frames),
		},
		InitialCounts: session.Board().ColourCounts(),
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("sim starting",
		"frames", opts.Frames,
		"rows", opts.Grid.Rows,
		"cols", opts.Grid.Cols,
		"seed", opts.Seed)

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for frame := 0; frame < opts.Frames; frame++ {
		select {
		case <-ctx.Done():
			report.Interrupted = true
			logger.Warn("sim interrupted", "frame", frame, "err", ctx.Err())
			break Loop
		default:
		}

		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		updateStart := time.Now()
		scheduler.Once(deltaTime.Seconds())
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.FramesRun++
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	final := session.Board()
	report.Transitions = session.Transitions()
	report.Clicks = player.Clicks
	report.Refills = player.Refills
	report.Clears = counts.clears
	report.Cleared = counts.cleared
	report.Refilled = counts.refilled
	report.FinalCounts = final.ColourCounts()
	report.FinalPieces = final.Len()
	report.FinalVacancies = marble.EmptyLocations(final, opts.Grid)
	report.Systems = scheduler.GetStats().Systems

	logger.Info("sim finished",
		"frames", report.FramesRun,
		"transitions", report.Transitions,
		"clears", report.Clears,
		"elapsed", report.TotalTime)

	return report, nil
}
