package testing

import (
	"testing"

	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/graphics"
)

type recordingTarget struct {
	events []gestures.PointerEvent
}

func (r *recordingTarget) DispatchPointer(event gestures.PointerEvent) bool {
	r.events = append(r.events, event)
	return true
}

func (r *recordingTarget) phases() []gestures.PointerPhase {
	out := make([]gestures.PointerPhase, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Phase
	}
	return out
}

func TestSendPointerDown_NoTarget(t *testing.T) {
	tester := NewTesterWithT(t)

	err := tester.SendPointerDown(graphics.Offset{}, 1)
	if err == nil {
		t.Error("expected error when sending pointer with no target")
	}
}

func TestSendPointerMove_WithoutDown(t *testing.T) {
	tester := NewTesterWithT(t)
	target := &recordingTarget{}
	tester.SetTarget(target)

	if err := tester.SendPointerMove(graphics.Offset{Y: 10}, 7); err == nil {
		t.Error("expected error for move without down")
	}
	if len(target.events) != 0 {
		t.Errorf("expected nothing dispatched, got %d events", len(target.events))
	}
}

func TestTapAt(t *testing.T) {
	tester := NewTesterWithT(t)
	target := &recordingTarget{}
	tester.SetTarget(target)

	if err := tester.TapAt(graphics.Offset{X: 50, Y: 50}); err != nil {
		t.Fatalf("TapAt failed: %v", err)
	}
	got := target.phases()
	if len(got) != 2 || got[0] != gestures.PointerPhaseDown || got[1] != gestures.PointerPhaseUp {
		t.Errorf("phases = %v, want [down up]", got)
	}
	if target.events[0].PointerID != target.events[1].PointerID {
		t.Error("tap should use a single pointer ID")
	}
}

func TestDragFromInSteps(t *testing.T) {
	tester := NewTesterWithT(t)
	target := &recordingTarget{}
	tester.SetTarget(target)

	err := tester.DragFromInSteps(graphics.Offset{X: 10, Y: 20}, graphics.Offset{Y: 100}, 4)
	if err != nil {
		t.Fatalf("DragFromInSteps failed: %v", err)
	}

	if len(target.events) != 6 {
		t.Fatalf("expected down + 4 moves + up, got %d events", len(target.events))
	}
	wantY := []float64{20, 45, 70, 95, 120, 120}
	for i, ev := range target.events {
		if ev.Position.Y != wantY[i] {
			t.Errorf("event %d y = %v, want %v", i, ev.Position.Y, wantY[i])
		}
	}
	if d := target.events[2].Delta; d.Y != 25 {
		t.Errorf("move delta = %v, want 25", d.Y)
	}
	if last := target.events[5]; last.Phase != gestures.PointerPhaseUp || last.Delta.Y != 0 {
		t.Errorf("last event = %+v, want up with zero delta", last)
	}
}

func TestDragFrom_NewPointerPerGesture(t *testing.T) {
	tester := NewTesterWithT(t)
	target := &recordingTarget{}
	tester.SetTarget(target)

	tester.DragFrom(graphics.Offset{}, graphics.Offset{Y: 10})
	tester.DragFrom(graphics.Offset{}, graphics.Offset{Y: 10})

	first := target.events[0].PointerID
	second := target.events[len(target.events)-1].PointerID
	if first == second {
		t.Errorf("expected distinct pointer IDs, both %d", first)
	}
}

func TestHoldAndCancel(t *testing.T) {
	tester := NewTesterWithT(t)
	target := &recordingTarget{}
	tester.SetTarget(target)

	id, err := tester.Hold(graphics.Offset{Y: 5}, graphics.Offset{Y: 30}, 3)
	if err != nil {
		t.Fatalf("Hold failed: %v", err)
	}
	if err := tester.SendPointerCancel(id); err != nil {
		t.Fatalf("SendPointerCancel failed: %v", err)
	}

	last := target.events[len(target.events)-1]
	if last.Phase != gestures.PointerPhaseCancel {
		t.Errorf("last phase = %v, want cancel", last.Phase)
	}
	if last.Position.Y != 35 {
		t.Errorf("cancel position = %v, want last pointer position 35", last.Position.Y)
	}
	if err := tester.SendPointerUp(graphics.Offset{}, id); err == nil {
		t.Error("expected error for up after cancel")
	}
}

func TestFling_PumpsFrames(t *testing.T) {
	tester := NewTesterWithT(t)
	target := &recordingTarget{}
	tester.SetTarget(target)

	if err := tester.Fling(graphics.Offset{}, graphics.Offset{Y: 300}); err != nil {
		t.Fatalf("Fling failed: %v", err)
	}
	if tester.FrameCount() != 3 {
		t.Errorf("FrameCount = %d, want 3", tester.FrameCount())
	}
	if len(target.events) != 5 {
		t.Errorf("expected down + 3 moves + up, got %d", len(target.events))
	}
}
