package spin

import "time"

// ManualScheduler queues ticks until the caller steps them. It drives the
// controller outside an interactive event loop.
type ManualScheduler struct {
	pending []func(time.Time)
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(tick func(now time.Time)) {
	s.pending = append(s.pending, tick)
}

// Pending returns the number of queued ticks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Step runs the ticks queued before the call with the given frame time.
// Ticks scheduled while stepping run on the next Step.
func (s *ManualScheduler) Step(now time.Time) int {
	ticks := s.pending
	s.pending = nil
	for _, tick := range ticks {
		tick(now)
	}
	return len(ticks)
}

// Run steps frames of length frame starting at start until nothing is
// queued, returning the number of frames run.
func (s *ManualScheduler) Run(start time.Time, frame time.Duration) int {
	frames := 0
	now := start
	for s.Pending() > 0 {
		s.Step(now)
		now = now.Add(frame)
		frames++
	}
	return frames
}
