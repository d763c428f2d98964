package testing

import (
	"fmt"

	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/graphics"
)

// DefaultDragSteps is the number of move events DragFrom emits.
const DefaultDragSteps = 10

// pointerState tracks the last position of an active pointer.
type pointerState struct {
	position graphics.Offset
}

func (t *Tester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}

// TapAt simulates a tap at pos.
func (t *Tester) TapAt(pos graphics.Offset) error {
	id := t.allocPointerID()
	if err := t.SendPointerDown(pos, id); err != nil {
		return err
	}
	return t.SendPointerUp(pos, id)
}

// DragFrom simulates a drag from start by delta in DefaultDragSteps moves
// and releases at the end.
func (t *Tester) DragFrom(start, delta graphics.Offset) error {
	return t.DragFromInSteps(start, delta, DefaultDragSteps)
}

// DragFromInSteps is DragFrom with an explicit number of move events.
func (t *Tester) DragFromInSteps(start, delta graphics.Offset, steps int) error {
	id, err := t.Hold(start, delta, steps)
	if err != nil {
		return err
	}
	return t.SendPointerUp(start.Add(delta), id)
}

// Hold is DragFromInSteps without the release. It returns the pointer ID
// so the caller can continue or end the gesture.
func (t *Tester) Hold(start, delta graphics.Offset, steps int) (int64, error) {
	steps = max(1, steps)
	id := t.allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return id, err
	}
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		}
		if err := t.SendPointerMove(pos, id); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Fling simulates a fast drag: few large moves, with a frame pumped
// between each to let animations observe the gesture in flight.
func (t *Tester) Fling(start, delta graphics.Offset) error {
	id := t.allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	const steps = 3
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		}
		if err := t.SendPointerMove(pos, id); err != nil {
			return err
		}
		t.PumpFor(FrameDuration)
	}
	return t.SendPointerUp(start.Add(delta), id)
}

// SendPointerDown sends a pointer-down event at pos with the given pointer ID.
func (t *Tester) SendPointerDown(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// SendPointerMove sends a pointer-move event at pos with the given pointer ID.
func (t *Tester) SendPointerMove(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     t.deltaFor(pointerID, pos),
		Phase:     gestures.PointerPhaseMove,
	})
}

// SendPointerUp sends a pointer-up event at pos with the given pointer ID.
func (t *Tester) SendPointerUp(pos graphics.Offset, pointerID int64) error {
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     t.deltaFor(pointerID, pos),
		Phase:     gestures.PointerPhaseUp,
	})
}

// SendPointerCancel sends a pointer-cancel event for the given pointer ID
// at its last position.
func (t *Tester) SendPointerCancel(pointerID int64) error {
	pos := graphics.Offset{}
	if state := t.pointers[pointerID]; state != nil {
		pos = state.position
	}
	return t.sendPointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseCancel,
	})
}

func (t *Tester) deltaFor(pointerID int64, pos graphics.Offset) graphics.Offset {
	if state := t.pointers[pointerID]; state != nil {
		return pos.Sub(state.position)
	}
	return graphics.Offset{}
}

func (t *Tester) sendPointer(event gestures.PointerEvent) error {
	if t.target == nil {
		return fmt.Errorf("no pointer target mounted")
	}

	switch event.Phase {
	case gestures.PointerPhaseDown:
		t.pointers[event.PointerID] = &pointerState{position: event.Position}
	case gestures.PointerPhaseMove:
		state := t.pointers[event.PointerID]
		if state == nil {
			return fmt.Errorf("pointer %d moved without going down", event.PointerID)
		}
		state.position = event.Position
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		if t.pointers[event.PointerID] == nil {
			return fmt.Errorf("pointer %d ended without going down", event.PointerID)
		}
		delete(t.pointers, event.PointerID)
	}

	t.target.DispatchPointer(event)
	return nil
}
