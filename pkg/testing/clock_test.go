package testing

import (
	"testing"
	"time"

	"github.com/go-drift/pullrefresh/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestTester_Clock(t *testing.T) {
	tester := NewTesterWithT(t)
	clk := tester.Clock()

	if clk == nil {
		t.Fatal("expected non-nil clock")
	}

	start := tester.Scheduler().Now()
	clk.Advance(500 * time.Millisecond)
	if tester.Scheduler().Now().Sub(start) != 500*time.Millisecond {
		t.Error("clock advancement not reflected in scheduler time")
	}
}

func TestTester_PumpFor(t *testing.T) {
	tester := NewTesterWithT(t)
	var ticks []time.Duration
	ticker := tester.Scheduler().NewTicker(func(elapsed time.Duration) {
		ticks = append(ticks, elapsed)
	})
	ticker.Start()

	tester.PumpFor(40 * time.Millisecond)
	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond, 40 * time.Millisecond}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, ticks[i], want[i])
		}
	}
	if tester.FrameCount() != 3 {
		t.Errorf("FrameCount = %d, want 3", tester.FrameCount())
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewTesterWithT(t)
	ticker := tester.Scheduler().NewTicker(func(time.Duration) {})
	ticker.Start()

	if err := tester.PumpAndSettle(100 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}

	ticker.Stop()
	if err := tester.PumpAndSettle(100 * time.Millisecond); err != nil {
		t.Errorf("expected settle once ticker stops, got %v", err)
	}
}

func TestPumpAndSettle_FiniteTicker(t *testing.T) {
	tester := NewTesterWithT(t)
	var tk *animation.Ticker
	tk = tester.Scheduler().NewTicker(func(elapsed time.Duration) {
		if elapsed >= 100*time.Millisecond {
			tk.Stop()
		}
	})
	tk.Start()

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected settle after ticker finishes, got: %v", err)
	}
	if tk.IsActive() {
		t.Error("ticker should have stopped")
	}
}
