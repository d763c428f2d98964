package testing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
	rerrors "github.com/go-drift/pullrefresh/pkg/errors"
	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

// FrameDuration is the fake time between frames in PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// PointerTarget receives routed pointer events, typically a
// *refresh.Container.
type PointerTarget interface {
	DispatchPointer(event gestures.PointerEvent) bool
}

// Mountable is a pointer target the tester can measure and lay out.
type Mountable interface {
	PointerTarget
	layout.Child
}

// Tester drives a view with a fake clock and synthetic pointer events.
type Tester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler
	target    PointerTarget
	pointers  map[int64]*pointerState
	nextID    int64
	recorder  *Recorder
	frames    int
}

// NewTester creates a tester with its own fake clock and scheduler.
// Call Cleanup when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	return &Tester{
		clock:     clk,
		scheduler: animation.NewScheduler(clk),
		pointers:  make(map[int64]*pointerState),
	}
}

// NewTesterWithT creates a tester that records reported errors for the
// duration of the test and restores the default handler on cleanup.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	tester.recorder = &Recorder{}
	rerrors.SetHandler(tester.recorder)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the default error handler if this tester replaced it.
func (t *Tester) Cleanup() {
	if t.recorder != nil {
		rerrors.SetHandler(nil)
		t.recorder = nil
	}
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler animators should be built on.
func (t *Tester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// SetTarget sets the receiver of pointer events without laying it out.
func (t *Tester) SetTarget(target PointerTarget) {
	t.target = target
}

// Mount measures target at exactly size, lays it out at the origin, and
// makes it the pointer target.
func (t *Tester) Mount(target Mountable, size graphics.Size) {
	target.Measure(layout.Tight(size))
	target.Layout(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	t.target = target
}

// Pump runs a single frame at the current fake time.
func (t *Tester) Pump() {
	t.frames++
	t.scheduler.Step()
}

// PumpFor advances the clock by d in FrameDuration steps, pumping a frame
// after each step.
func (t *Tester) PumpFor(d time.Duration) {
	for d > 0 {
		step := min(d, FrameDuration)
		t.clock.Advance(step)
		t.Pump()
		d -= step
	}
}

// PumpAndSettle runs frames until no ticker is active or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.scheduler.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// FrameCount returns the number of frames pumped so far.
func (t *Tester) FrameCount() int {
	return t.frames
}

// Errors returns the errors reported since the tester was created, or nil
// when it was not created with NewTesterWithT.
func (t *Tester) Errors() []*rerrors.RefreshError {
	if t.recorder == nil {
		return nil
	}
	return t.recorder.Errors()
}

// Recorder returns the installed error recorder, or nil.
func (t *Tester) Recorder() *Recorder {
	return t.recorder
}

// Recorder is an error handler that keeps every report in memory.
type Recorder struct {
	mu     sync.Mutex
	errs   []*rerrors.RefreshError
	panics []*rerrors.PanicError
}

// HandleError records err.
func (r *Recorder) HandleError(err *rerrors.RefreshError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic records err.
func (r *Recorder) HandlePanic(err *rerrors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns a copy of the recorded errors.
func (r *Recorder) Errors() []*rerrors.RefreshError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*rerrors.RefreshError(nil), r.errs...)
}

// Panics returns a copy of the recorded panics.
func (r *Recorder) Panics() []*rerrors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*rerrors.PanicError(nil), r.panics...)
}

// CountKind returns how many recorded errors have the given kind.
func (r *Recorder) CountKind(kind rerrors.ErrorKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, err := range r.errs {
		if err.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
	r.panics = nil
}
