package refresh

import (
	"time"

	"github.com/petermattis/goid"

	"github.com/go-drift/pullrefresh/pkg/animation"
	"github.com/go-drift/pullrefresh/pkg/errors"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

const (
	// DefaultHeaderExtent is the header height in logical units.
	DefaultHeaderExtent = 80.0
	// DefaultDampingFactor converts finger travel into header travel.
	DefaultDampingFactor = 0.5
)

// Options configures a Container. Zero values select the defaults.
type Options struct {
	// Header replaces the built-in DefaultHeader.
	Header Header
	// Density converts HeaderExtent to device pixels. Defaults to a
	// scale of 1.
	Density layout.Density
	// Animator settles the header. Defaults to an IntAnimator on Scheduler.
	Animator animation.SettleAnimator
	// Scheduler drives the default animator. Defaults to a new scheduler on
	// the system clock; the host must Step it every frame.
	Scheduler *animation.Scheduler
	// SettleDuration and SettleCurve configure the default animator.
	SettleDuration time.Duration
	SettleCurve    func(float64) float64
	// DampingFactor defaults to DefaultDampingFactor.
	DampingFactor float64
	// HeaderExtent defaults to DefaultHeaderExtent logical units.
	HeaderExtent float64
}

// state is everything the gesture state machine reads or writes.
type state struct {
	movement     int
	headerHeight int
	kind         ContentKind
	refreshing   bool
	dragAnchorY  float64
	pointerDownY float64
	progress     int
}

// Container is a pull-to-refresh view holding a header and one content
// child. It is not safe for concurrent use.
type Container struct {
	children      []layout.Child // [0] header, [1] content, extras ignored
	density       layout.Density
	animator      animation.SettleAnimator
	scheduler     *animation.Scheduler
	damping       float64
	headerExtent  float64
	onRefresh     func()
	onNeedsLayout func()

	state      state
	classified layout.Child
	adapter    contentAdapter

	size    graphics.Size
	frame   graphics.Rect
	laidOut bool

	// pointer routing for DispatchPointer
	tracking      bool
	activePointer int64
	dragging      bool

	owner int64
}

// NewContainer creates a container with its header already attached.
// Add the content with SetContent or AddChild.
func NewContainer(opts Options) *Container {
	c := &Container{
		density:      opts.Density,
		animator:     opts.Animator,
		scheduler:    opts.Scheduler,
		damping:      opts.DampingFactor,
		headerExtent: opts.HeaderExtent,
		owner:        goid.Get(),
	}
	if c.density == nil {
		c.density = layout.DeviceScale(1)
	}
	if c.damping <= 0 {
		c.damping = DefaultDampingFactor
	}
	if c.headerExtent <= 0 {
		c.headerExtent = DefaultHeaderExtent
	}
	if c.animator == nil {
		if c.scheduler == nil {
			c.scheduler = animation.NewScheduler(nil)
		}
		duration := opts.SettleDuration
		if duration <= 0 {
			duration = animation.DefaultSettleDuration
		}
		anim := animation.NewIntAnimator(c.scheduler, duration)
		if opts.SettleCurve != nil {
			anim.Curve = opts.SettleCurve
		}
		c.animator = anim
	}
	header := opts.Header
	if header == nil {
		header = NewDefaultHeader()
	}
	c.children = []layout.Child{header}
	c.adapter = classify(nil)
	return c
}

// BindToCurrentGoroutine makes the calling goroutine the container's owner.
// Hosts that construct on one goroutine and run their event loop on another
// call this once from the event loop.
func (c *Container) BindToCurrentGoroutine() {
	c.owner = goid.Get()
}

func (c *Container) checkThread(op string) {
	if id := goid.Get(); id != c.owner {
		errors.Report(&errors.RefreshError{
			Op:         op,
			Kind:       errors.KindThread,
			Err:        errors.ErrWrongGoroutine,
			StackTrace: errors.CaptureStack(),
		})
	}
}

// AddChild appends a child. The first child after the header becomes the
// content; further children are ignored by measure and layout.
func (c *Container) AddChild(child layout.Child) {
	c.checkThread("refresh.Container.AddChild")
	if child == nil {
		return
	}
	c.children = append(c.children, child)
	if len(c.children) > 2 {
		errors.Tracef("refresh.Container.AddChild", "ignoring child %d: only one content view is laid out", len(c.children)-1)
	}
}

// SetContent installs or replaces the content child. A new child is
// reclassified on the next measure pass.
func (c *Container) SetContent(child layout.Child) {
	c.checkThread("refresh.Container.SetContent")
	if child == nil {
		if len(c.children) > 1 {
			c.children = c.children[:1]
		}
		return
	}
	if len(c.children) < 2 {
		c.children = append(c.children, child)
		return
	}
	c.children[1] = child
}

// SetHeader replaces the header child.
func (c *Container) SetHeader(header Header) {
	c.checkThread("refresh.Container.SetHeader")
	if header == nil {
		header = NewDefaultHeader()
	}
	c.children[0] = header
	header.SetProgress(c.state.progress)
	if ri, ok := header.(RefreshingIndicator); ok {
		ri.SetRefreshing(c.state.refreshing)
	}
}

// ChildCount returns the number of attached children, header included.
func (c *Container) ChildCount() int {
	return len(c.children)
}

// Header returns the header child.
func (c *Container) Header() Header {
	h, _ := c.children[0].(Header)
	return h
}

// Content returns the content child, or nil.
func (c *Container) Content() layout.Child {
	if len(c.children) < 2 {
		return nil
	}
	return c.children[1]
}

// SetRefreshListener registers the single callback fired when a release
// passes the open threshold. Nil clears it.
func (c *Container) SetRefreshListener(fn func()) {
	c.checkThread("refresh.Container.SetRefreshListener")
	c.onRefresh = fn
}

// SetOnNeedsLayout registers the host hook called after every change of
// the header offset, once the children have been repositioned.
func (c *Container) SetOnNeedsLayout(fn func()) {
	c.onNeedsLayout = fn
}

// SetDampingFactor changes the drag damping for subsequent moves.
// Non-positive values restore the default.
func (c *Container) SetDampingFactor(f float64) {
	c.checkThread("refresh.Container.SetDampingFactor")
	if f <= 0 {
		f = DefaultDampingFactor
	}
	c.damping = f
}

// DampingFactor returns the current drag damping.
func (c *Container) DampingFactor() float64 {
	return c.damping
}

// StopRefreshing ends a running refresh: the header settles closed and the
// container accepts new pulls immediately, before the animation finishes.
// It does nothing when no refresh is running.
func (c *Container) StopRefreshing() {
	c.checkThread("refresh.Container.StopRefreshing")
	if !c.state.refreshing {
		return
	}
	c.state.refreshing = false
	c.setHeaderRefreshing(false)
	c.settleTo(0)
}

// IsRefreshing reports whether a refresh is running.
func (c *Container) IsRefreshing() bool {
	return c.state.refreshing
}

// IsDragging reports whether the container owns the current gesture.
func (c *Container) IsDragging() bool {
	return c.dragging
}

// Movement returns the header reveal offset in device pixels.
func (c *Container) Movement() int {
	return c.state.movement
}

// Progress returns the last progress pushed to the header (0-100).
func (c *Container) Progress() int {
	return c.state.progress
}

// HeaderHeight returns the header height in device pixels, or 0 before
// the first measure pass.
func (c *Container) HeaderHeight() int {
	return c.state.headerHeight
}

// ContentKind returns the classification of the content child.
func (c *Container) ContentKind() ContentKind {
	return c.state.kind
}

// Animator returns the settle animator.
func (c *Container) Animator() animation.SettleAnimator {
	return c.animator
}

// Scheduler returns the scheduler of the default animator, or nil when a
// custom animator was injected.
func (c *Container) Scheduler() *animation.Scheduler {
	return c.scheduler
}

func (c *Container) setHeaderRefreshing(refreshing bool) {
	if ri, ok := c.children[0].(RefreshingIndicator); ok {
		ri.SetRefreshing(refreshing)
	}
}

// settleTo animates movement to target. The animator supersedes any
// settle already running.
func (c *Container) settleTo(target int) {
	errors.Tracef("refresh.Container.settle", "from=%d to=%d", c.state.movement, target)
	c.animator.Animate(c.state.movement, target, c.onSettleTick)
}

func (c *Container) onSettleTick(value int) {
	c.checkThread("refresh.Container.onSettleTick")
	c.state.movement = value
	c.requestLayout()
}

// stopSettle halts a running settle so a new drag owns movement.
func (c *Container) stopSettle() {
	if s, ok := c.animator.(interface{ Stop() }); ok {
		s.Stop()
	}
}
