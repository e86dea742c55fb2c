package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drumkit/engine"
)

func TestManualSchedulerRunsInDueOrder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := engine.NewManualScheduler(start)

	var order []string
	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "c") })
	s.After(50*time.Millisecond, func() { order = append(order, "late") })

	assert.Equal(t, 3, s.Advance(20*time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, start.Add(20*time.Millisecond), s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestManualSchedulerNestedTasks(t *testing.T) {
	s := engine.NewManualScheduler(time.Time{})

	var at []time.Duration
	start := s.Now()
	var tick func()
	tick = func() {
		at = append(at, s.Now().Sub(start))
		s.After(10*time.Millisecond, tick)
	}
	s.After(10*time.Millisecond, tick)

	s.Advance(35 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, at)
	assert.Equal(t, 1, s.Pending())
}

func TestManualSchedulerCancel(t *testing.T) {
	s := engine.NewManualScheduler(time.Time{})

	ran := false
	task := s.After(time.Millisecond, func() { ran = true })
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	s.Advance(time.Second)
	assert.False(t, ran)

	done := s.After(0, func() {})
	s.Advance(0)
	assert.False(t, done.Cancel(), "already run")
}

func TestLoopSchedulerDeliversToLoop(t *testing.T) {
	s := engine.NewLoopScheduler(4)
	defer s.Stop()

	ran := make(chan struct{})
	s.After(time.Millisecond, func() { close(ran) })

	select {
	case fn := <-s.Tasks():
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("task not delivered")
	}

	select {
	case <-ran:
	default:
		t.Fatal("callback did not run on the loop goroutine")
	}
}

func TestLoopSchedulerCancel(t *testing.T) {
	s := engine.NewLoopScheduler(4)
	defer s.Stop()

	ran := false
	task := s.After(20*time.Millisecond, func() { ran = true })
	require.True(t, task.Cancel())

	select {
	case fn := <-s.Tasks():
		fn()
	case <-time.After(60 * time.Millisecond):
	}
	assert.False(t, ran)
}

func TestLoopSchedulerStopReleasesTimers(t *testing.T) {
	s := engine.NewLoopScheduler(0)
	s.After(0, func() {})
	s.Stop()
	s.Stop()
	// Nothing reads Tasks; a timer blocked on delivery must exit after Stop
	time.Sleep(10 * time.Millisecond)
}
