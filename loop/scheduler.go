package loop

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// systemClock accumulates the run durations of one system.
type systemClock struct {
	name  string
	runs  int64
	total time.Duration
	last  time.Duration
	min   time.Duration
	max   time.Duration
}

func (c *systemClock) record(d time.Duration) {
	if c.runs == 0 || d < c.min {
		c.min = d
	}
	c.max = max(c.max, d)
	c.runs++
	c.last = d
	c.total += d
}

func (c *systemClock) snapshot() SystemStats {
	stats := SystemStats{
		Name:           c.name,
		ExecutionCount: c.runs,
		MinDuration:    c.min,
		MaxDuration:    c.max,
		LastDuration:   c.last,
		TotalDuration:  c.total,
	}
	if c.runs > 0 {
		stats.AvgDuration = c.total / time.Duration(c.runs)
	}
	return stats
}

// Scheduler runs registered systems in order against a session, then applies
// the events they produced.
type Scheduler struct {
	session *Session
	events  *Events
	systems []System
	clocks  []*systemClock
	frames  int64
}

// NewScheduler creates a new scheduler for the given session.
func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{
		session: session,
		events:  NewEvents(),
		systems: make([]System, 0),
	}
}

// Session returns the scheduled session.
func (s *Scheduler) Session() *Session {
	return s.session
}

// Register appends a system to the execution order. Stats are reported under the
// system's type name.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.systems = append(s.systems, system)
	s.clocks = append(s.clocks, &systemClock{name: t.Name()})
}

// Once executes all registered systems once with the given delta time and flushes
// their events. It returns the number of transitions applied.
func (s *Scheduler) Once(dt float64) int {
	frame := newFrame(dt, s.session, s.events)
	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.clocks[i].record(time.Since(start))
	}
	s.frames++
	return s.events.Flush(s.session)
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns a snapshot of frame and per-system execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.clocks)),
	}
	for i, c := range s.clocks {
		stats.Systems[i] = c.snapshot()
		stats.TotalExecutions += c.runs
	}
	return stats
}
