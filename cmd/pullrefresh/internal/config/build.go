package config

import (
	"github.com/go-drift/pullrefresh/pkg/animation"
	"github.com/go-drift/pullrefresh/pkg/content"
	"github.com/go-drift/pullrefresh/pkg/layout"
	"github.com/go-drift/pullrefresh/pkg/refresh"
)

// Options converts the pull settings into container options driven by
// scheduler. The header is left to the caller.
func (p PullConfig) Options(scheduler *animation.Scheduler) (refresh.Options, error) {
	curve, err := animation.CurveByName(p.Curve)
	if err != nil {
		return refresh.Options{}, err
	}
	return refresh.Options{
		Density:        layout.DeviceScale(p.Scale),
		Scheduler:      scheduler,
		SettleDuration: p.SettleDuration,
		SettleCurve:    curve,
		DampingFactor:  p.Damping,
		HeaderExtent:   p.HeaderExtent,
	}, nil
}

// NewContent builds the configured content view.
func (c ContentConfig) NewContent() layout.Child {
	switch c.Kind {
	case ContentStatic:
		return content.NewStatic("pull down to refresh")
	case ContentRecycler:
		var manager content.LayoutManager
		if c.Layout == LayoutGrid {
			manager = content.NewGridLayoutManager(c.Span, c.ItemExtent)
		} else {
			manager = content.NewLinearLayoutManager(c.ItemExtent)
		}
		return content.NewRecycler(c.Items, manager)
	default:
		return content.NewScrollList(c.Items, c.ItemExtent)
	}
}

// NewContainer builds a container with the configured content attached.
// A nil header installs the default one.
func (c Config) NewContainer(scheduler *animation.Scheduler, header refresh.Header) (*refresh.Container, error) {
	opts, err := c.Pull.Options(scheduler)
	if err != nil {
		return nil, err
	}
	opts.Header = header
	container := refresh.NewContainer(opts)
	container.SetContent(c.Content.NewContent())
	return container, nil
}
