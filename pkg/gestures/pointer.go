// Package gestures defines the pointer event stream delivered by a host to
// gesture-aware views.
package gestures

import (
	"fmt"

	"github.com/go-drift/pullrefresh/pkg/graphics"
)

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is sent when a pointer touches the surface.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is sent while a pointer moves in contact.
	PointerPhaseMove
	// PointerPhaseUp is sent when a pointer is lifted.
	PointerPhaseUp
	// PointerPhaseCancel is sent when the gesture is taken away from the
	// receiver, for example because an ancestor intercepted it.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in the receiver's coordinate space.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	// Delta is the movement since the previous event of the same pointer.
	Delta graphics.Offset
	Phase PointerPhase
}

// WithPhase returns a copy of the event with a different phase.
func (e PointerEvent) WithPhase(phase PointerPhase) PointerEvent {
	e.Phase = phase
	return e
}

// PointerHandler receives pointer events. HandlePointer reports whether the
// receiver consumed the event; a handler that does not consume a down event
// receives no further events for that pointer.
type PointerHandler interface {
	HandlePointer(event PointerEvent) bool
}
