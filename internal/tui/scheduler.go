package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaScheduler runs controller ticks on Bubble Tea frame messages. At most
// one frame tick is in flight, so tick N completes before N+1 is scheduled.
type teaScheduler struct {
	interval time.Duration
	pending  func(time.Time)
	inFlight bool
}

// Schedule implements spin.Scheduler.
func (s *teaScheduler) Schedule(tick func(now time.Time)) {
	s.pending = tick
}

// next returns the command delivering the next frame, or nil when nothing is
// pending or a frame is already on its way.
func (s *teaScheduler) next() tea.Cmd {
	if s.pending == nil || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

func (s *teaScheduler) fire(now time.Time) {
	s.inFlight = false
	tick := s.pending
	s.pending = nil
	if tick != nil {
		tick(now)
	}
}
