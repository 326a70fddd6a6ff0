// Package tui provides the Bubble Tea integration for grid flight.
// It handles the terminal UI loop, key bindings and the SSH server.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridflight/internal/flight"
)

// TickMsg is delivered when a scheduled flight tick is due.
// Seq identifies the scheduled task; cancelled tasks are dropped.
type TickMsg struct {
	Seq uint64
}

// teaScheduler implements flight.Scheduler on top of tea.Tick so that ticks
// run on the Bubble Tea event loop instead of a timer goroutine.
type teaScheduler struct {
	mu   sync.Mutex
	next uint64
	live map[uint64]func()
	cmds []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{live: make(map[uint64]func())}
}

// Schedule queues a tea.Tick command; collect it with Take.
func (s *teaScheduler) Schedule(d time.Duration, fn func()) flight.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	seq := s.next
	s.live[seq] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{Seq: seq}
	}))
	return teaTask{s: s, seq: seq}
}

// Take returns the commands queued since the last call, or nil.
func (s *teaScheduler) Take() tea.Cmd {
	s.mu.Lock()
	cmds := s.cmds
	s.cmds = nil
	s.mu.Unlock()

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Fire runs the task behind msg unless it was cancelled or already ran.
func (s *teaScheduler) Fire(msg TickMsg) bool {
	s.mu.Lock()
	fn, ok := s.live[msg.Seq]
	delete(s.live, msg.Seq)
	s.mu.Unlock()

	if !ok {
		return false
	}
	fn()
	return true
}

// Pending returns the number of scheduled tasks not yet fired or cancelled.
func (s *teaScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

type teaTask struct {
	s   *teaScheduler
	seq uint64
}

func (t teaTask) Cancel() {
	t.s.mu.Lock()
	delete(t.s.live, t.seq)
	t.s.mu.Unlock()
}
