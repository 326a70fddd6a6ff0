package flight

import (
	"sync"
	"time"
)

// Task is a handle to one scheduled callback.
type Task interface {
	// Cancel prevents the callback from running if it has not started yet.
	Cancel()
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

// TimerScheduler schedules callbacks on runtime timers. Callbacks run on
// their own goroutine.
type TimerScheduler struct{}

// Schedule implements Scheduler.
func (TimerScheduler) Schedule(d time.Duration, fn func()) Task {
	return timerTask{t: time.AfterFunc(d, fn)}
}

type timerTask struct {
	t *time.Timer
}

func (t timerTask) Cancel() {
	t.t.Stop()
}

// ManualScheduler queues callbacks until the caller fires them. It makes
// tick sequences deterministic in tests and in step-by-step tools.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*manualTask
	delays  []time.Duration
}

type manualTask struct {
	owner     *ManualScheduler
	fn        func()
	cancelled bool
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (m *ManualScheduler) Schedule(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTask{owner: m, fn: fn}
	m.pending = append(m.pending, t)
	m.delays = append(m.delays, d)
	return t
}

func (t *manualTask) Cancel() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.cancelled = true
}

// Pending returns the number of tasks that are scheduled and not cancelled.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Fire runs the oldest live task and reports whether there was one.
// Cancelled tasks are dropped on the way.
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	var task *manualTask
	for len(m.pending) > 0 {
		t := m.pending[0]
		m.pending = m.pending[1:]
		if !t.cancelled {
			task = t
			break
		}
	}
	m.mu.Unlock()

	if task == nil {
		return false
	}
	task.fn()
	return true
}

// FireStale runs the oldest task even if it was cancelled, simulating a
// timer that fired while its cancellation was in flight.
func (m *ManualScheduler) FireStale() bool {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return false
	}
	t := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()

	t.fn()
	return true
}

// Delays returns the delay of every Schedule call so far.
func (m *ManualScheduler) Delays() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]time.Duration, len(m.delays))
	copy(out, m.delays)
	return out
}
