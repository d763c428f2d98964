package content

import (
	"math"

	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

// Recycler is recycler-like content: item placement is delegated to a
// LayoutManager, and the container asks the manager, not the view, whether
// the first item is fully visible.
type Recycler struct {
	layout.Box
	ScrollPosition

	ItemCount int

	manager     LayoutManager
	dragPointer int64
	dragging    bool
	lastY       float64
	residual    float64
}

// NewRecycler creates a recycler of itemCount items placed by manager.
func NewRecycler(itemCount int, manager LayoutManager) *Recycler {
	r := &Recycler{ItemCount: itemCount}
	r.SetLayoutManager(manager)
	return r
}

// SetLayoutManager replaces the layout manager. Built-in managers are bound
// to this recycler's scroll state.
func (r *Recycler) SetLayoutManager(manager LayoutManager) {
	r.manager = manager
	if b, ok := manager.(interface{ bind(*Recycler) }); ok {
		b.bind(r)
	}
	if r.IsMeasured() {
		r.updateExtents()
	}
}

// LayoutManager implements LayoutManagerHost.
func (r *Recycler) LayoutManager() LayoutManager {
	return r.manager
}

// Measure takes the full constraints and updates scroll extents.
func (r *Recycler) Measure(constraints layout.Constraints) graphics.Size {
	size := r.Box.Measure(constraints)
	r.updateExtents()
	return size
}

func (r *Recycler) updateExtents() {
	extent := 0
	if r.manager != nil {
		extent = r.manager.ContentExtent(r.ItemCount)
	}
	r.SetExtents(extent, r.Size().Height)
}

// HandlePointer scrolls the recycler with the pointer.
func (r *Recycler) HandlePointer(event gestures.PointerEvent) bool {
	return handleScrollPointer(&r.ScrollPosition, &r.dragPointer, &r.dragging, &r.lastY, &r.residual, event)
}

// LinearLayoutManager stacks items of ItemExtent pixels, one per row.
type LinearLayoutManager struct {
	ItemExtent int
	host       *Recycler
}

// NewLinearLayoutManager creates a linear manager for items of itemExtent px.
func NewLinearLayoutManager(itemExtent int) *LinearLayoutManager {
	return &LinearLayoutManager{ItemExtent: itemExtent}
}

func (m *LinearLayoutManager) bind(r *Recycler) { m.host = r }

// Strategy returns LayoutLinear.
func (m *LinearLayoutManager) Strategy() LayoutStrategy { return LayoutLinear }

// ContentExtent returns itemCount * ItemExtent.
func (m *LinearLayoutManager) ContentExtent(itemCount int) int {
	return max(0, itemCount) * m.ItemExtent
}

// FirstCompletelyVisibleItemPosition implements LayoutManager.
func (m *LinearLayoutManager) FirstCompletelyVisibleItemPosition() int {
	if m.host == nil {
		return NoPosition
	}
	row := firstFullRow(m.host.Offset(), m.ItemExtent, m.host.Size().Height, rowCount(m.host.ItemCount, 1))
	return row
}

// GridLayoutManager places SpanCount items per row of RowExtent pixels.
type GridLayoutManager struct {
	SpanCount int
	RowExtent int
	host      *Recycler
}

// NewGridLayoutManager creates a grid manager. spanCount below 1 is treated as 1.
func NewGridLayoutManager(spanCount, rowExtent int) *GridLayoutManager {
	return &GridLayoutManager{SpanCount: max(1, spanCount), RowExtent: rowExtent}
}

func (m *GridLayoutManager) bind(r *Recycler) { m.host = r }

// Strategy returns LayoutGrid.
func (m *GridLayoutManager) Strategy() LayoutStrategy { return LayoutGrid }

// ContentExtent returns the height of the rows needed for itemCount items.
func (m *GridLayoutManager) ContentExtent(itemCount int) int {
	return rowCount(itemCount, m.spans()) * m.RowExtent
}

// FirstCompletelyVisibleItemPosition implements LayoutManager. The first
// item of the first fully visible row is reported.
func (m *GridLayoutManager) FirstCompletelyVisibleItemPosition() int {
	if m.host == nil {
		return NoPosition
	}
	row := firstFullRow(m.host.Offset(), m.RowExtent, m.host.Size().Height, rowCount(m.host.ItemCount, m.spans()))
	if row == NoPosition {
		return NoPosition
	}
	return row * m.spans()
}

func (m *GridLayoutManager) spans() int {
	return max(1, m.SpanCount)
}

func rowCount(itemCount, spans int) int {
	if itemCount <= 0 {
		return 0
	}
	return (itemCount + spans - 1) / spans
}

// firstFullRow returns the index of the first row whose top and bottom both
// lie inside [offset, offset+viewport], or NoPosition.
func firstFullRow(offset, rowExtent, viewport, rows int) int {
	if rows == 0 || rowExtent <= 0 {
		return NoPosition
	}
	row := int(math.Ceil(float64(offset) / float64(rowExtent)))
	if row >= rows {
		return NoPosition
	}
	if (row+1)*rowExtent > offset+viewport {
		return NoPosition
	}
	return row
}
