package refresh

import "github.com/go-drift/pullrefresh/pkg/layout"

// Header is the view revealed above the content during a pull.
type Header interface {
	layout.Child
	// SetProgress receives the pull progress on a 0-100 scale.
	SetProgress(progress int)
}

// RefreshingIndicator is implemented by headers that change appearance
// while a refresh runs.
type RefreshingIndicator interface {
	SetRefreshing(refreshing bool)
}

// ProgressIndicator is a determinate indicator on a 0..Max scale that turns
// indeterminate while a refresh runs.
type ProgressIndicator struct {
	Max           int
	Progress      int
	Indeterminate bool
}

// Fraction returns Progress/Max in [0, 1].
func (p ProgressIndicator) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return float64(p.Progress) / float64(p.Max)
}

// DefaultHeader is the header installed when none is injected.
type DefaultHeader struct {
	layout.Box
	Indicator ProgressIndicator
}

// NewDefaultHeader returns a header with a determinate indicator at 0/100.
func NewDefaultHeader() *DefaultHeader {
	return &DefaultHeader{
		Indicator: ProgressIndicator{Max: 100},
	}
}

// SetProgress clamps progress into [0, Max].
func (h *DefaultHeader) SetProgress(progress int) {
	h.Indicator.Progress = max(0, min(progress, h.Indicator.Max))
}

// SetRefreshing switches the indicator between determinate and
// indeterminate.
func (h *DefaultHeader) SetRefreshing(refreshing bool) {
	h.Indicator.Indeterminate = refreshing
}
