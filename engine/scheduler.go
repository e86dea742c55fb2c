package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Task is a deferred callback that can be cancelled before it runs
type Task interface {
	// Cancel prevents the callback from running, reporting whether it was still pending
	Cancel() bool
}

// Scheduler runs callbacks after a delay on the event loop
// Callbacks never run concurrently with each other or with event handling
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// LoopScheduler fires timers on their own goroutines but only hands the callbacks to the
// loop through Tasks; the loop owner executes them
type LoopScheduler struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoopScheduler creates a scheduler with a buffered task channel
func NewLoopScheduler(buffer int) *LoopScheduler {
	return &LoopScheduler{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Stop releases timers still waiting to deliver; pending callbacks are dropped
func (s *LoopScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Tasks returns the channel of due callbacks to be executed by the loop
func (s *LoopScheduler) Tasks() <-chan func() {
	return s.tasks
}

type loopTask struct {
	timer     *time.Timer
	cancelled atomic.Bool
	fired     atomic.Bool
}

// After schedules fn to be delivered to the loop after d
func (s *LoopScheduler) After(d time.Duration, fn func()) Task {
	t := &loopTask{}
	t.timer = time.AfterFunc(d, func() {
		if t.cancelled.Load() {
			return
		}
		run := func() {
			// Cancel may race the delivery; re-check on the loop
			if t.cancelled.Load() {
				return
			}
			t.fired.Store(true)
			fn()
		}
		select {
		case s.tasks <- run:
		case <-s.done:
		}
	})
	return t
}

func (t *loopTask) Cancel() bool {
	if t.fired.Load() {
		return false
	}
	t.timer.Stop()
	return t.cancelled.CompareAndSwap(false, true)
}

// ManualScheduler is a deterministic scheduler driven by Advance
// Time only moves when Advance is called; callbacks run on the caller's goroutine
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTask
}

type manualTask struct {
	s    *ManualScheduler
	due  time.Time
	seq  uint64
	fn   func()
	done bool
}

// NewManualScheduler creates a scheduler whose clock starts at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the scheduler's current time
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After schedules fn at Now()+d
func (m *ManualScheduler) After(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{s: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Pending returns the number of callbacks not yet run or cancelled
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves time forward by d, running every callback that becomes due in order of due
// time then scheduling order, including callbacks scheduled by callbacks within the window
// Returns the number of callbacks run
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	end := m.now.Add(d)
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		next := m.popDue(end)
		if next == nil {
			m.now = end
			m.mu.Unlock()
			return ran
		}
		if next.due.After(m.now) {
			m.now = next.due
		}
		next.done = true
		m.mu.Unlock()

		next.fn()
		ran++
	}
}

// popDue removes and returns the earliest task due at or before end; caller holds mu
func (m *ManualScheduler) popDue(end time.Time) *manualTask {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		a, b := m.pending[i], m.pending[j]
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return a.seq < b.seq
	})
	first := m.pending[0]
	if first.due.After(end) {
		return nil
	}
	m.pending = m.pending[1:]
	return first
}

func (t *manualTask) Cancel() bool {
	m := t.s
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.done {
		return false
	}
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			t.done = true
			return true
		}
	}
	return false
}
