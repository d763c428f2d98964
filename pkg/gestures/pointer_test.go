package gestures

import (
	"testing"

	"github.com/go-drift/pullrefresh/pkg/graphics"
)

func TestPointerPhaseString(t *testing.T) {
	tests := []struct {
		phase PointerPhase
		want  string
	}{
		{PointerPhaseDown, "down"},
		{PointerPhaseMove, "move"},
		{PointerPhaseUp, "up"},
		{PointerPhaseCancel, "cancel"},
		{PointerPhase(42), "PointerPhase(42)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("PointerPhase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}

func TestWithPhaseKeepsPosition(t *testing.T) {
	ev := PointerEvent{PointerID: 3, Position: graphics.Offset{X: 1, Y: 2}, Phase: PointerPhaseMove}
	cancel := ev.WithPhase(PointerPhaseCancel)
	if cancel.Phase != PointerPhaseCancel {
		t.Errorf("Phase = %v, want cancel", cancel.Phase)
	}
	if cancel.Position != ev.Position || cancel.PointerID != 3 {
		t.Errorf("WithPhase changed identity: %+v", cancel)
	}
	if ev.Phase != PointerPhaseMove {
		t.Error("WithPhase mutated the receiver")
	}
}
