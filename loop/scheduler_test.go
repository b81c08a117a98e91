package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/marblecrush/loop"
	"github.com/plus3/marblecrush/marble"
	"github.com/stretchr/testify/assert"
)

func TestScheduler(t *testing.T) {
	t.Run("systems see the board from frame start", func(t *testing.T) {
		scheduler := loop.NewScheduler(newTestSession())

		first := &clickSystem{At: marble.Pt(10, 10)}
		second := &clickSystem{At: marble.Pt(30, 10)}
		scheduler.Register(first)
		scheduler.Register(second)

		applied := scheduler.Once(1.0 / 60.0)
		assert.Equal(t, 3, applied)
		assert.Equal(t, []int{3}, first.SeenLen)
		assert.Equal(t, []int{3}, second.SeenLen)
		assert.True(t, scheduler.Session().Board().IsEmpty())

		scheduler.Once(1.0 / 60.0)
		assert.Equal(t, []int{3, 0}, first.SeenLen)
	})

	t.Run("execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler(newTestSession())

		refill := &refillSystem{}
		click := &clickSystem{At: marble.Pt(10, 10)}
		scheduler.Register(refill)
		scheduler.Register(click)

		scheduler.Once(1.0)
		assert.Equal(t, "[BLUE@(30,10)]", scheduler.Session().Board().String())

		assert.Equal(t, 1, click.ExecuteCount)
		assert.Equal(t, 1, refill.ExecuteCount)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newTestSession())

		click := &clickSystem{At: marble.Pt(-100, -100)}
		scheduler.Register(click)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Positive(t, click.ExecuteCount)
		assert.Equal(t, 3, scheduler.Session().Board().Len())
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler(newTestSession())
	scheduler.Register(&clickSystem{At: marble.Pt(-1, -1)})
	scheduler.Register(&refillSystem{})

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Zero(t, stats.TotalExecutions)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for range 5 {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, int64(10), stats.TotalExecutions)
	assert.Equal(t, "clickSystem", stats.Systems[0].Name)
	assert.Equal(t, "refillSystem", stats.Systems[1].Name)

	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
		assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration)
	}
}

func TestSchedulerStatsFirstRun(t *testing.T) {
	scheduler := loop.NewScheduler(newTestSession())
	scheduler.Register(&refillSystem{})
	scheduler.Once(0.016)

	sys := scheduler.GetStats().Systems[0]
	assert.Equal(t, int64(1), sys.ExecutionCount)
	assert.Equal(t, sys.LastDuration, sys.MinDuration)
	assert.Equal(t, sys.LastDuration, sys.MaxDuration)
	assert.Equal(t, sys.LastDuration, sys.AvgDuration)
	assert.Equal(t, sys.LastDuration, sys.TotalDuration)
}
