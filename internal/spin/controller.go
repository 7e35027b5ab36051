// Package spin owns the wheel state and runs the spin animation.
package spin

import (
	"errors"
	"math"
	"time"

	"github.com/verte-zerg/tuispin/internal/model"
	"github.com/verte-zerg/tuispin/internal/names"
	"github.com/verte-zerg/tuispin/internal/wheel"
)

const (
	// DefaultDuration is the length of one spin animation.
	DefaultDuration = 4500 * time.Millisecond

	// At least three full turns, plus up to two more.
	minDistance   = 6 * math.Pi
	extraDistance = 4 * math.Pi
)

// ErrSpinning is returned when the list is changed while a spin runs.
var ErrSpinning = errors.New("wheel is spinning")

// State is the controller state.
type State int

const (
	// StateIdle accepts spin requests and list changes.
	StateIdle State = iota
	// StateSpinning runs an animation to completion.
	StateSpinning
)

func (s State) String() string {
	if s == StateSpinning {
		return "spinning"
	}
	return "idle"
}

// Scheduler runs tick once on the next display refresh with the frame time.
type Scheduler interface {
	Schedule(tick func(now time.Time))
}

// Hooks receive controller output. Both are optional.
type Hooks struct {
	// Frame is called whenever the wheel must be redrawn at rotation.
	Frame func(rotation float64)
	// Done is called once per spin with the selected entrant.
	Done func(result model.SpinResult)
}

// Options configure a Controller.
type Options struct {
	Duration time.Duration
	Random   Random
	Hooks    Hooks
}

// Controller owns the wheel state: names, rotation, and the running spin.
// It is not safe for concurrent use; confine it to one event loop.
type Controller struct {
	list     names.List
	rotation float64
	session  *Session

	sched    Scheduler
	rnd      Random
	duration time.Duration
	hooks    Hooks
}

// NewController builds an idle controller with an empty list.
func NewController(sched Scheduler, opts Options) *Controller {
	c := &Controller{
		sched:    sched,
		rnd:      opts.Random,
		duration: opts.Duration,
		hooks:    opts.Hooks,
	}
	if c.rnd == nil {
		c.rnd = NewRandom(0)
	}
	if c.duration <= 0 {
		c.duration = DefaultDuration
	}
	return c
}

// SetHooks replaces the output hooks.
func (c *Controller) SetHooks(h Hooks) {
	c.hooks = h
}

// Names returns the names currently on the wheel.
func (c *Controller) Names() []string {
	return c.list.Names()
}

// HasOriginal reports whether an authoritative load has happened.
func (c *Controller) HasOriginal() bool {
	return c.list.HasOriginal()
}

// Rotation returns the current wheel rotation in radians.
func (c *Controller) Rotation() float64 {
	return c.rotation
}

// State returns the current state.
func (c *Controller) State() State {
	if c.session != nil {
		return StateSpinning
	}
	return StateIdle
}

// Spinning reports whether a spin is running.
func (c *Controller) Spinning() bool {
	return c.session != nil
}

// Duration returns the configured spin duration.
func (c *Controller) Duration() time.Duration {
	return c.duration
}

// SetList replaces the wheel names and resets the rotation. storeOriginal
// marks an authoritative load that also refreshes the original snapshot.
func (c *Controller) SetList(candidate []string, storeOriginal bool) error {
	if c.session != nil {
		return ErrSpinning
	}
	if err := c.list.Set(candidate, storeOriginal); err != nil {
		return err
	}
	c.rotation = 0
	c.redraw()
	return nil
}

// KeepPortion shortens every name of the last authoritative load and puts
// the result on the wheel without touching the original snapshot.
func (c *Controller) KeepPortion(kind names.Kind) ([]string, error) {
	if c.session != nil {
		return nil, ErrSpinning
	}
	derived, err := c.list.Derive(kind)
	if err != nil {
		return nil, err
	}
	if err := c.SetList(derived, false); err != nil {
		return nil, err
	}
	return derived, nil
}

// RequestSpin starts a spin. It returns false, changing nothing, while a
// spin is running or when the wheel has no names.
func (c *Controller) RequestSpin() bool {
	if c.session != nil || c.list.Len() == 0 {
		return false
	}
	c.session = &Session{
		StartRotation: c.rotation,
		Distance:      minDistance + c.rnd.Float64()*extraDistance,
		Duration:      c.duration,
	}
	c.sched.Schedule(c.advance)
	return true
}

// Winner returns the name under the pointer and its index.
func (c *Controller) Winner() (string, int) {
	current := c.list.Names()
	index := wheel.SelectedIndex(c.rotation, len(current))
	if index < 0 {
		return "", -1
	}
	return current[index], index
}

func (c *Controller) advance(now time.Time) {
	s := c.session
	if s == nil {
		return
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = now
	}
	rotation, progress := s.RotationAt(now)
	c.rotation = rotation
	c.redraw()
	if progress < 1 {
		c.sched.Schedule(c.advance)
		return
	}

	c.session = nil
	winner, index := c.Winner()
	if c.hooks.Done != nil {
		c.hooks.Done(model.SpinResult{
			Winner:    winner,
			Index:     index,
			Entrants:  c.list.Len(),
			Rotation:  c.rotation,
			StartedAt: s.StartedAt,
			EndedAt:   now,
		})
	}
}

func (c *Controller) redraw() {
	if c.hooks.Frame != nil {
		c.hooks.Frame(c.rotation)
	}
}
