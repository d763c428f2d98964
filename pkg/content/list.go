package content

import (
	"math"

	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

// ScrollList is list-like content: ItemCount rows of ItemExtent pixels that
// scroll natively under a drag.
type ScrollList struct {
	layout.Box
	ScrollPosition

	ItemCount  int
	ItemExtent int

	dragPointer int64
	dragging    bool
	lastY       float64
	residual    float64
}

// NewScrollList creates a list of itemCount rows of itemExtent pixels.
func NewScrollList(itemCount, itemExtent int) *ScrollList {
	return &ScrollList{ItemCount: itemCount, ItemExtent: itemExtent}
}

// Measure takes the full constraints and updates scroll extents.
func (l *ScrollList) Measure(constraints layout.Constraints) graphics.Size {
	size := l.Box.Measure(constraints)
	l.SetExtents(l.ItemCount*l.ItemExtent, size.Height)
	return size
}

// VisibleRange returns the half-open range of rows intersecting the viewport.
func (l *ScrollList) VisibleRange() (start, end int) {
	return visibleRows(l.ItemCount, l.ItemExtent, l.Offset(), l.Size().Height)
}

// HandlePointer scrolls the list with the pointer. It consumes every event
// of a gesture that starts inside it.
func (l *ScrollList) HandlePointer(event gestures.PointerEvent) bool {
	return handleScrollPointer(&l.ScrollPosition, &l.dragPointer, &l.dragging, &l.lastY, &l.residual, event)
}

func visibleRows(itemCount, itemExtent, offset, viewport int) (int, int) {
	if itemCount <= 0 || itemExtent <= 0 {
		return 0, 0
	}
	if viewport <= 0 {
		return 0, itemCount
	}
	start := offset / itemExtent
	end := int(math.Ceil(float64(offset+viewport) / float64(itemExtent)))
	return max(0, start), min(itemCount, max(start, end))
}

// handleScrollPointer applies drag deltas to a scroll position. Dragging
// the finger down reveals earlier rows, so the offset moves against the
// pointer. Sub-pixel motion accumulates in residual.
func handleScrollPointer(p *ScrollPosition, pointer *int64, dragging *bool, lastY, residual *float64, event gestures.PointerEvent) bool {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		*pointer = event.PointerID
		*dragging = true
		*lastY = event.Position.Y
		*residual = 0
		return true
	case gestures.PointerPhaseMove:
		if !*dragging || event.PointerID != *pointer {
			return false
		}
		*residual += *lastY - event.Position.Y
		*lastY = event.Position.Y
		whole := int(*residual)
		*residual -= float64(whole)
		p.ScrollBy(whole)
		return true
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		if !*dragging || event.PointerID != *pointer {
			return false
		}
		*dragging = false
		return true
	}
	return false
}
