// Package layout defines how a parent measures and positions its children.
//
// A parent runs two passes. Measure hands each child its constraints and
// records the size it picks; Layout assigns each child a frame in the
// parent's coordinate space. Frames may extend outside the parent (a
// pull-to-refresh header sits above the top edge until revealed).
package layout

import "github.com/go-drift/pullrefresh/pkg/graphics"

// Child is a measurable, positionable view.
type Child interface {
	// Measure picks a size within constraints and returns it.
	Measure(constraints Constraints) graphics.Size
	// Layout positions the child at frame, in parent coordinates.
	Layout(frame graphics.Rect)
}

// Box is a base Child that records the last measurement and frame.
// Views embed it and override Measure when they need intrinsic sizing.
type Box struct {
	size        graphics.Size
	frame       graphics.Rect
	constraints Constraints
	measured    bool
	laidOut     int
}

// Measure takes the biggest size allowed.
func (b *Box) Measure(constraints Constraints) graphics.Size {
	b.constraints = constraints
	b.size = constraints.Biggest()
	b.measured = true
	return b.size
}

// Layout records the frame assigned by the parent.
func (b *Box) Layout(frame graphics.Rect) {
	b.frame = frame
	b.laidOut++
}

// Size returns the last measured size.
func (b *Box) Size() graphics.Size {
	return b.size
}

// Constraints returns the last constraints passed to Measure.
func (b *Box) Constraints() Constraints {
	return b.constraints
}

// Frame returns the last frame assigned by the parent.
func (b *Box) Frame() graphics.Rect {
	return b.frame
}

// IsMeasured reports whether Measure has run at least once.
func (b *Box) IsMeasured() bool {
	return b.measured
}

// LayoutCount returns how many times Layout has run.
func (b *Box) LayoutCount() int {
	return b.laidOut
}
