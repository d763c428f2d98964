package content

import (
	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

// Static is plain content with no scrolling of its own. It never consumes
// pointer events.
type Static struct {
	layout.Box
	Label string
}

// NewStatic creates plain content carrying a label for hosts to draw.
func NewStatic(label string) *Static {
	return &Static{Label: label}
}

// HandlePointer always returns false.
func (s *Static) HandlePointer(gestures.PointerEvent) bool {
	return false
}
