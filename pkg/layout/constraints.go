package layout

import (
	"fmt"

	"github.com/go-drift/pullrefresh/pkg/graphics"
)

// Unbounded is the max extent used for an axis with no upper limit.
const Unbounded = int(^uint(0) >> 1)

// Constraints bounds the size a child may choose, in device pixels.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns constraints that only allow the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// IsTight reports whether exactly one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clampInt(size.Width, c.MinWidth, c.MaxWidth),
		Height: clampInt(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Biggest returns the largest size allowed. Unbounded axes fall back to
// their minimum.
func (c Constraints) Biggest() graphics.Size {
	size := graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
	if c.MaxWidth >= Unbounded {
		size.Width = c.MinWidth
	}
	if c.MaxHeight >= Unbounded {
		size.Height = c.MinHeight
	}
	return size
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w=%d..%d, h=%d..%d)", c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
