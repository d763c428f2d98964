package refresh

import (
	"fmt"
	"math"

	"github.com/go-drift/pullrefresh/pkg/errors"
	"github.com/go-drift/pullrefresh/pkg/gestures"
)

// InterceptPointer decides whether the container takes over the gesture
// from its content. It never intercepts while a refresh runs. A downward
// move claims the gesture when the content is at its top; claiming moves
// the drag anchor to the claiming position.
func (c *Container) InterceptPointer(ev gestures.PointerEvent) bool {
	c.checkThread("refresh.Container.InterceptPointer")
	if c.state.refreshing || !c.prepare() {
		return false
	}
	y := ev.Position.Y
	switch ev.Phase {
	case gestures.PointerPhaseDown:
		c.state.pointerDownY = y
		if c.adapter.kind == ContentPlain {
			c.state.dragAnchorY = y
		}
	case gestures.PointerPhaseMove:
		if y-c.state.pointerDownY > 0 && c.adapter.atTop() {
			c.state.dragAnchorY = y
			c.claim()
			return true
		}
	}
	return false
}

// HandlePointer applies an event of a gesture the container owns. Moves
// recompute movement from the drag anchor, a release either opens the
// header and fires the refresh listener or closes it, and a cancel closes
// it. Events are ignored while a refresh runs.
func (c *Container) HandlePointer(ev gestures.PointerEvent) bool {
	c.checkThread("refresh.Container.HandlePointer")
	if c.state.refreshing || !c.prepare() {
		return false
	}
	y := ev.Position.Y
	switch ev.Phase {
	case gestures.PointerPhaseDown:
		c.state.pointerDownY = y
		c.state.dragAnchorY = y
		c.claim()
		c.drag(y)
	case gestures.PointerPhaseMove:
		c.dragging = true
		c.drag(y)
	case gestures.PointerPhaseUp:
		c.drag(y)
		c.dragging = false
		c.release()
	case gestures.PointerPhaseCancel:
		c.dragging = false
		c.settleTo(0)
	default:
		errors.Report(&errors.RefreshError{
			Op:   "refresh.Container.HandlePointer",
			Kind: errors.KindGesture,
			Err:  fmt.Errorf("unknown pointer phase %s", ev.Phase),
		})
		return false
	}
	return true
}

// DispatchPointer routes one event the way a view host does: intercept
// first, then the content, then the container once it owns the gesture.
// A down the content leaves unconsumed makes the container the owner from
// that down. When the container intercepts mid-gesture the content
// receives a cancel. Events from other pointers than the one that went
// down are dropped. A down that arrives before the previous gesture ended
// cancels that gesture first.
func (c *Container) DispatchPointer(ev gestures.PointerEvent) bool {
	c.checkThread("refresh.Container.DispatchPointer")
	if ev.Phase == gestures.PointerPhaseDown {
		if c.tracking {
			c.cancelTracked(ev)
		}
		c.tracking = true
		c.activePointer = ev.PointerID
		c.dragging = false
	} else if !c.tracking || ev.PointerID != c.activePointer {
		return false
	}
	if ev.Phase == gestures.PointerPhaseUp || ev.Phase == gestures.PointerPhaseCancel {
		defer func() { c.tracking = false }()
	}

	if c.dragging {
		return c.HandlePointer(ev)
	}

	if c.InterceptPointer(ev) {
		if ev.Phase != gestures.PointerPhaseDown {
			c.forwardToContent(ev.WithPhase(gestures.PointerPhaseCancel))
		}
		return true
	}

	consumed := c.forwardToContent(ev)
	if ev.Phase == gestures.PointerPhaseDown && !consumed && !c.state.refreshing && len(c.children) >= 2 {
		return c.HandlePointer(ev)
	}
	return consumed
}

// cancelTracked ends the gesture of the tracked pointer. An owned drag
// settles closed; otherwise the content sees the cancel.
func (c *Container) cancelTracked(down gestures.PointerEvent) {
	ev := down.WithPhase(gestures.PointerPhaseCancel)
	ev.PointerID = c.activePointer
	ev.Delta.X, ev.Delta.Y = 0, 0
	if c.dragging {
		c.HandlePointer(ev)
	} else {
		c.forwardToContent(ev)
	}
	c.tracking = false
}

func (c *Container) forwardToContent(ev gestures.PointerEvent) bool {
	h, ok := c.Content().(gestures.PointerHandler)
	if !ok {
		return false
	}
	return h.HandlePointer(ev)
}

// prepare classifies the content and fixes the header height if measure
// has not done so yet. It reports false when there is no content.
func (c *Container) prepare() bool {
	if len(c.children) < 2 {
		return false
	}
	c.ensureHeaderHeight()
	c.ensureClassified()
	return true
}

func (c *Container) claim() {
	c.dragging = true
	c.stopSettle()
	errors.Tracef("refresh.Container.claim", "kind=%s anchor=%.1f", c.state.kind, c.state.dragAnchorY)
}

func (c *Container) drag(y float64) {
	movement := int(math.Floor((y - c.state.dragAnchorY) * c.damping))
	c.state.movement = max(movement, 0)
	c.requestLayout()
	c.setProgress(progressFor(c.state.movement, c.state.headerHeight))
}

// release settles the header after the finger lifts. The listener runs
// after the open settle has started so a StopRefreshing call made from
// inside it supersedes that settle.
func (c *Container) release() {
	if c.state.headerHeight > 0 && c.state.movement > c.state.headerHeight {
		c.state.refreshing = true
		c.settleTo(c.state.headerHeight)
		c.setHeaderRefreshing(true)
		c.notifyRefresh()
		return
	}
	c.settleTo(0)
}

func (c *Container) notifyRefresh() {
	if c.onRefresh == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			errors.Report(&errors.RefreshError{
				Op:         "refresh.Container.onRefresh",
				Kind:       errors.KindCallback,
				Err:        fmt.Errorf("refresh listener panicked: %v", r),
				StackTrace: errors.CaptureStack(),
			})
		}
	}()
	c.onRefresh()
}

func (c *Container) setProgress(progress int) {
	c.state.progress = progress
	c.Header().SetProgress(progress)
}

// progressFor maps movement to the 0-100 indicator scale.
func progressFor(movement, headerHeight int) int {
	if headerHeight <= 0 {
		return 0
	}
	p := int(math.Round(float64(movement) * 100 / float64(headerHeight)))
	return max(0, min(p, 100))
}
