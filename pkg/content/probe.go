// Package content defines how a pull-to-refresh container asks its wrapped
// view whether it can still scroll toward its top, and ships reference
// views that answer.
//
// Three shapes of content are recognized:
//
//   - a [VerticalScroller] (list-like): answers CanScrollVertically(-1);
//   - a [LayoutManagerHost] (recycler-like): delegates item placement to a
//     [LayoutManager] that reports the first completely visible item;
//   - anything else is plain content with no scrolling of its own.
package content

import "fmt"

// VerticalScroller is list-like content.
type VerticalScroller interface {
	// CanScrollVertically reports whether the view can scroll further in
	// the given direction: negative checks toward the top, positive toward
	// the bottom.
	CanScrollVertically(direction int) bool
}

// LayoutManagerHost is recycler-like content whose item placement is
// delegated to a LayoutManager.
type LayoutManagerHost interface {
	LayoutManager() LayoutManager
}

// LayoutStrategy is the item arrangement of a LayoutManager.
type LayoutStrategy int

const (
	// LayoutUnknown is a strategy the container cannot reason about; such
	// content never yields the gesture to the container.
	LayoutUnknown LayoutStrategy = iota
	// LayoutLinear stacks one item per row.
	LayoutLinear
	// LayoutGrid places SpanCount items per row.
	LayoutGrid
)

func (s LayoutStrategy) String() string {
	switch s {
	case LayoutUnknown:
		return "unknown"
	case LayoutLinear:
		return "linear"
	case LayoutGrid:
		return "grid"
	default:
		return fmt.Sprintf("LayoutStrategy(%d)", int(s))
	}
}

// NoPosition is returned when no item is completely visible.
const NoPosition = -1

// LayoutManager arranges the items of recycler-like content.
type LayoutManager interface {
	Strategy() LayoutStrategy
	// ContentExtent is the total height of itemCount items.
	ContentExtent(itemCount int) int
	// FirstCompletelyVisibleItemPosition returns the adapter position of
	// the first item fully inside the viewport, or NoPosition.
	FirstCompletelyVisibleItemPosition() int
}

// CanScrollUp reports whether list-like content can still scroll toward
// its top. Content that is not a VerticalScroller never can.
func CanScrollUp(view any) bool {
	if s, ok := view.(VerticalScroller); ok {
		return s.CanScrollVertically(-1)
	}
	return false
}

// IsFirstItemFullyVisible reports whether recycler-like content shows item
// 0 completely. Only linear and grid strategies are understood; any other
// manager, or a missing one, reports false.
func IsFirstItemFullyVisible(view any) bool {
	host, ok := view.(LayoutManagerHost)
	if !ok {
		return false
	}
	lm := host.LayoutManager()
	if lm == nil {
		return false
	}
	switch lm.Strategy() {
	case LayoutLinear, LayoutGrid:
		return lm.FirstCompletelyVisibleItemPosition() == 0
	default:
		return false
	}
}
