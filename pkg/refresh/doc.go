// Package refresh implements a pull-to-refresh container.
//
// A [Container] owns two children: a header (a loading indicator) and one
// content view. Dragging the content down reveals the header with a damping
// factor of 0.5. Releasing once the header is more than fully revealed
// fires the refresh listener and pins the header open until the caller
// signals completion with [Container.StopRefreshing]; a shorter pull
// settles closed.
//
// # Gesture ownership
//
// The container never steals a drag from content that can still scroll
// toward its top. Content is classified once per child:
//
//   - list-like ([content.VerticalScroller]): the drag is claimed once
//     CanScrollVertically(-1) is false;
//   - recycler-like ([content.LayoutManagerHost]): claimed once item 0 is
//     completely visible, for linear and grid layout managers;
//   - plain: claimed on any downward move.
//
// While a refresh is running the container intercepts nothing.
//
// # Hosting
//
// The host drives three inputs and one output:
//
//	c := refresh.NewContainer(refresh.Options{Scheduler: sched})
//	c.SetContent(list)
//	c.SetRefreshListener(func() { go load() })
//
//	c.Measure(layout.Tight(screen))    // measure pass
//	c.Layout(screenRect)               // layout pass
//	c.DispatchPointer(event)           // each pointer event
//	sched.Step()                       // each frame
//
// SetOnNeedsLayout registers the host's invalidation hook, called after
// every change to the header offset. All calls must come from the goroutine
// that created the container (see [Container.BindToCurrentGoroutine]).
package refresh
