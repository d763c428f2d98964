// Package animation provides the frame-driven value animation used to
// settle a pull-to-refresh header open or closed.
//
// # Components
//
//   - [Scheduler]: the frame source. The host calls Step once per frame.
//   - [Ticker]: a per-animation callback registered with a scheduler.
//   - [IntAnimator]: interpolates an integer from a start to an end value
//     over a fixed duration, calling back on every frame. Starting a new
//     animation supersedes the running one.
//   - Curves ([LinearCurve], [AccelerateDecelerate], [EaseOut], ...).
//
// # Basic Usage
//
//	sched := animation.NewScheduler(nil)
//	anim := animation.NewIntAnimator(sched, 300*time.Millisecond)
//	anim.Animate(120, 0, func(v int) {
//	    offset = v
//	    requestLayout()
//	})
//
//	// once per frame
//	sched.Step()
package animation

import (
	"fmt"
	"math"
	"time"
)

// DefaultSettleDuration matches the platform default for value animators.
const DefaultSettleDuration = 300 * time.Millisecond

// SettleAnimator produces a time-driven sequence of integers converging
// from one value to another. Each produced value is passed to onTick; the
// final tick always carries exactly to.
type SettleAnimator interface {
	Animate(from, to int, onTick func(value int))
}

// AnimationStatus is the state of an [IntAnimator].
//
//	           Animate()
//	Idle ─────────────────► Forward / Reverse ──► Completed
//	                               │
//	                 Animate/Stop  └──────────► Canceled
type AnimationStatus int

const (
	// AnimationIdle means no animation has run yet.
	AnimationIdle AnimationStatus = iota
	// AnimationForward means the value is increasing toward its target.
	AnimationForward
	// AnimationReverse means the value is decreasing toward its target.
	AnimationReverse
	// AnimationCompleted means the last animation reached its target.
	AnimationCompleted
	// AnimationCanceled means the last animation was stopped or superseded
	// before reaching its target.
	AnimationCanceled
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	case AnimationCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// IntAnimator interpolates integers on a [Scheduler].
//
// At most one animation runs at a time: Animate stops the previous ticker
// before starting a new one, so the last caller wins.
type IntAnimator struct {
	// Duration is the length of each animation. Zero or negative jumps
	// straight to the target on the first frame.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	scheduler       *Scheduler
	ticker          *Ticker
	from            int
	to              int
	value           int
	onTick          func(int)
	status          AnimationStatus
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewIntAnimator creates an animator on s with the given duration and the
// [AccelerateDecelerate] curve.
func NewIntAnimator(s *Scheduler, duration time.Duration) *IntAnimator {
	return &IntAnimator{
		Duration:        duration,
		Curve:           AccelerateDecelerate,
		scheduler:       s,
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Animate starts interpolating from from to to, superseding any running
// animation. onTick receives every intermediate value.
func (a *IntAnimator) Animate(from, to int, onTick func(value int)) {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
		a.setStatus(AnimationCanceled)
	}

	a.from = from
	a.to = to
	a.value = from
	a.onTick = onTick
	if to >= from {
		a.setStatus(AnimationForward)
	} else {
		a.setStatus(AnimationReverse)
	}

	a.ticker = a.scheduler.NewTicker(a.tick)
	a.ticker.Start()
}

func (a *IntAnimator) tick(elapsed time.Duration) {
	progress := 1.0
	if a.Duration > 0 {
		progress = math.Min(float64(elapsed)/float64(a.Duration), 1.0)
	}

	eased := progress
	if a.Curve != nil {
		eased = clampUnit(a.Curve(progress))
	}
	if progress >= 1.0 {
		a.value = a.to
	} else {
		a.value = a.from + int(math.Round(float64(a.to-a.from)*eased))
	}

	// The callback may start a new animation; only finish if it didn't.
	ticker := a.ticker
	if a.onTick != nil {
		a.onTick(a.value)
	}
	if progress >= 1.0 && a.ticker == ticker {
		a.ticker.Stop()
		a.ticker = nil
		a.setStatus(AnimationCompleted)
	}
}

// Stop halts the running animation at its current value.
func (a *IntAnimator) Stop() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	a.ticker = nil
	a.setStatus(AnimationCanceled)
}

// Value returns the last value produced.
func (a *IntAnimator) Value() int {
	return a.value
}

// Target returns the end value of the current or last animation.
func (a *IntAnimator) Target() int {
	return a.to
}

// Status returns the current animation status.
func (a *IntAnimator) Status() AnimationStatus {
	return a.status
}

// IsAnimating returns true if an animation is running.
func (a *IntAnimator) IsAnimating() bool {
	return a.ticker != nil
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (a *IntAnimator) AddStatusListener(fn func(AnimationStatus)) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.statusListeners[id] = fn
	return func() {
		delete(a.statusListeners, id)
	}
}

func (a *IntAnimator) setStatus(status AnimationStatus) {
	if a.status == status {
		return
	}
	a.status = status
	for _, listener := range a.statusListeners {
		listener(status)
	}
}
