package animation

import (
	"math"
	"testing"
	"time"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScheduler() (*Scheduler, *stepClock) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewScheduler(clk), clk
}

func TestTickerElapsed(t *testing.T) {
	sched, clk := newTestScheduler()
	var got []time.Duration
	ticker := sched.NewTicker(func(elapsed time.Duration) {
		got = append(got, elapsed)
	})
	ticker.Start()
	clk.Advance(16 * time.Millisecond)
	sched.Step()
	clk.Advance(16 * time.Millisecond)
	sched.Step()
	ticker.Stop()
	sched.Step()

	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("ticks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d elapsed = %v, want %v", i, got[i], want[i])
		}
	}
	if sched.HasActiveTickers() {
		t.Error("stopped ticker should be removed from the scheduler")
	}
}

func TestSchedulersAreIndependent(t *testing.T) {
	a, _ := newTestScheduler()
	b, _ := newTestScheduler()
	a.NewTicker(func(time.Duration) {}).Start()
	if !a.HasActiveTickers() {
		t.Error("scheduler a should have an active ticker")
	}
	if b.HasActiveTickers() {
		t.Error("scheduler b should not see tickers started on a")
	}
}

func TestIntAnimatorReachesTarget(t *testing.T) {
	sched, clk := newTestScheduler()
	anim := NewIntAnimator(sched, 300*time.Millisecond)

	var values []int
	anim.Animate(100, 80, func(v int) { values = append(values, v) })
	if anim.Status() != AnimationReverse {
		t.Errorf("Status = %v, want reverse", anim.Status())
	}
	for sched.HasActiveTickers() {
		clk.Advance(16 * time.Millisecond)
		sched.Step()
	}

	if len(values) == 0 {
		t.Fatal("expected ticks")
	}
	if last := values[len(values)-1]; last != 80 {
		t.Errorf("final value = %d, want 80", last)
	}
	for i := 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			t.Fatalf("values not monotonic: %v", values)
		}
	}
	if anim.Status() != AnimationCompleted {
		t.Errorf("Status = %v, want completed", anim.Status())
	}
	if anim.IsAnimating() {
		t.Error("IsAnimating should be false after completion")
	}
}

func TestIntAnimatorZeroDuration(t *testing.T) {
	sched, _ := newTestScheduler()
	anim := NewIntAnimator(sched, 0)
	var values []int
	anim.Animate(0, 80, func(v int) { values = append(values, v) })
	sched.Step()
	if len(values) != 1 || values[0] != 80 {
		t.Errorf("values = %v, want [80]", values)
	}
}

func TestIntAnimatorSupersedes(t *testing.T) {
	sched, clk := newTestScheduler()
	anim := NewIntAnimator(sched, 100*time.Millisecond)

	var first, second []int
	anim.Animate(0, 80, func(v int) { first = append(first, v) })
	clk.Advance(50 * time.Millisecond)
	sched.Step()

	var statuses []AnimationStatus
	anim.AddStatusListener(func(s AnimationStatus) { statuses = append(statuses, s) })
	anim.Animate(anim.Value(), 0, func(v int) { second = append(second, v) })

	for sched.HasActiveTickers() {
		clk.Advance(10 * time.Millisecond)
		sched.Step()
	}

	if len(first) != 1 {
		t.Errorf("superseded animation kept ticking: %v", first)
	}
	if second[len(second)-1] != 0 {
		t.Errorf("final value = %d, want 0", second[len(second)-1])
	}
	want := []AnimationStatus{AnimationCanceled, AnimationReverse, AnimationCompleted}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("status %d = %v, want %v", i, statuses[i], want[i])
		}
	}
}

func TestIntAnimatorRestartFromCallback(t *testing.T) {
	sched, clk := newTestScheduler()
	anim := NewIntAnimator(sched, 0)

	var got []int
	anim.Animate(0, 10, func(v int) {
		got = append(got, v)
		anim.Animate(v, 0, func(v int) { got = append(got, v) })
	})
	clk.Advance(time.Millisecond)
	sched.Step()
	sched.Step()

	if len(got) != 2 || got[0] != 10 || got[1] != 0 {
		t.Errorf("got %v, want [10 0]", got)
	}
	if anim.IsAnimating() {
		t.Error("animator should be idle")
	}
}

func TestIntAnimatorStop(t *testing.T) {
	sched, clk := newTestScheduler()
	anim := NewIntAnimator(sched, 100*time.Millisecond)
	ticks := 0
	anim.Animate(0, 100, func(int) { ticks++ })
	clk.Advance(10 * time.Millisecond)
	sched.Step()
	anim.Stop()
	clk.Advance(10 * time.Millisecond)
	sched.Step()
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
	if anim.Status() != AnimationCanceled {
		t.Errorf("Status = %v, want canceled", anim.Status())
	}
}

func TestCurvesFixEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":                LinearCurve,
		"accelerate-decelerate": AccelerateDecelerate,
		"decelerate":            Decelerate,
		"ease-out":              EaseOut,
		"ease-in-out":           EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); math.Abs(got) > 1e-6 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); math.Abs(got-1) > 1e-6 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		prev := curve(0)
		for i := 1; i <= 100; i++ {
			v := curve(float64(i) / 100)
			if v < prev-1e-9 {
				t.Errorf("%s is not monotonic at t=%v", name, float64(i)/100)
				break
			}
			prev = v
		}
	}
}

func TestCurveByName(t *testing.T) {
	if _, err := CurveByName("linear"); err != nil {
		t.Errorf("CurveByName(linear) error = %v", err)
	}
	if c, err := CurveByName(""); err != nil || c == nil {
		t.Errorf("CurveByName(\"\"): nil curve = %t, err = %v; want default curve", c == nil, err)
	}
	if _, err := CurveByName("bounce"); err == nil {
		t.Error("CurveByName(bounce) should fail")
	}
}

func TestAnimationStatusString(t *testing.T) {
	if AnimationCompleted.String() != "completed" {
		t.Errorf("String() = %q", AnimationCompleted.String())
	}
	if AnimationStatus(9).String() != "AnimationStatus(9)" {
		t.Errorf("String() = %q", AnimationStatus(9).String())
	}
}
