package refresh

import (
	"fmt"

	"github.com/go-drift/pullrefresh/pkg/errors"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

// Measure resolves the container to the biggest size its constraints allow,
// measures the header at exactly the header height and the content at the
// full size, and classifies a content child it has not seen before.
//
// Without a content child this reports a configuration error and measures
// nothing.
func (c *Container) Measure(constraints layout.Constraints) graphics.Size {
	c.checkThread("refresh.Container.Measure")
	c.size = constraints.Constrain(constraints.Biggest())
	errors.Tracef("refresh.Container.Measure", "%s -> %dx%d", constraints, c.size.Width, c.size.Height)
	if !c.hasChildren("refresh.Container.Measure") {
		return c.size
	}

	c.ensureHeaderHeight()
	c.ensureClassified()
	c.children[0].Measure(layout.Tight(graphics.Size{Width: c.size.Width, Height: c.state.headerHeight}))
	c.children[1].Measure(layout.Tight(c.size))
	return c.size
}

// ensureHeaderHeight converts the header extent once; the result is stable
// for the container's lifetime.
func (c *Container) ensureHeaderHeight() {
	if c.state.headerHeight == 0 {
		c.state.headerHeight = c.density.ToDevicePixels(c.headerExtent)
	}
}

func (c *Container) ensureClassified() {
	child := c.Content()
	if child == c.classified {
		return
	}
	c.classified = child
	c.adapter = classify(child)
	c.state.kind = c.adapter.kind
	errors.Tracef("refresh.Container.Measure", "content classified as %s", c.state.kind)
}

// Layout positions the header at [movement-headerHeight, movement] and the
// content at [movement, height], both spanning the full width of frame.
// Children are placed in the container's own coordinate space.
func (c *Container) Layout(frame graphics.Rect) {
	c.checkThread("refresh.Container.Layout")
	c.frame = frame
	c.laidOut = true
	c.layoutChildren()
}

// HeaderFrame returns the header's last frame in container coordinates.
func (c *Container) HeaderFrame() graphics.Rect {
	return c.headerFrame()
}

// ContentFrame returns the content's last frame in container coordinates.
func (c *Container) ContentFrame() graphics.Rect {
	return c.contentFrame()
}

func (c *Container) headerFrame() graphics.Rect {
	return graphics.Rect{
		Left:   0,
		Top:    c.state.movement - c.state.headerHeight,
		Right:  c.frame.Width(),
		Bottom: c.state.movement,
	}
}

func (c *Container) contentFrame() graphics.Rect {
	return graphics.Rect{
		Left:   0,
		Top:    c.state.movement,
		Right:  c.frame.Width(),
		Bottom: c.frame.Height(),
	}
}

func (c *Container) layoutChildren() {
	if !c.hasChildren("refresh.Container.Layout") {
		return
	}
	c.children[0].Layout(c.headerFrame())
	c.children[1].Layout(c.contentFrame())
	errors.Tracef("refresh.Container.Layout", "movement=%d header=%+v", c.state.movement, c.headerFrame())
}

// requestLayout keeps the children in step with movement and tells the
// host to redraw.
func (c *Container) requestLayout() {
	if c.laidOut {
		c.layoutChildren()
	}
	if c.onNeedsLayout != nil {
		c.onNeedsLayout()
	}
}

func (c *Container) hasChildren(op string) bool {
	if len(c.children) >= 2 {
		return true
	}
	errors.Report(&errors.RefreshError{
		Op:   op,
		Kind: errors.KindConfig,
		Err:  fmt.Errorf("%d child(ren) attached: %w", len(c.children), errors.ErrMissingContent),
	})
	return false
}
