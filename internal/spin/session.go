package spin

import (
	"math"
	"time"
)

// Session is one running spin.
type Session struct {
	StartRotation float64
	Distance      float64
	Duration      time.Duration
	// StartedAt is zero until the first animation tick.
	StartedAt time.Time
}

// Progress returns the clamped fraction of the animation elapsed at now.
func (s *Session) Progress(now time.Time) float64 {
	if s.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(s.StartedAt)
	p := float64(elapsed) / float64(s.Duration)
	return math.Min(math.Max(p, 0), 1)
}

// RotationAt returns the eased rotation and the progress at now.
func (s *Session) RotationAt(now time.Time) (rotation, progress float64) {
	progress = s.Progress(now)
	return s.StartRotation + s.Distance*EaseOutCubic(progress), progress
}

// EaseOutCubic maps linear progress in [0, 1] to a decelerating curve that
// starts fast and reaches 1 with zero slope.
func EaseOutCubic(progress float64) float64 {
	inv := 1 - progress
	return 1 - inv*inv*inv
}
