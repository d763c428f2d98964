package content

// ScrollPosition is a clamped vertical scroll offset in device pixels.
// Offset 0 shows the top of the content.
type ScrollPosition struct {
	offset    int
	max       int
	listeners map[int]func()
	nextID    int
}

// Offset returns the current scroll offset.
func (p *ScrollPosition) Offset() int {
	return p.offset
}

// MaxOffset returns the largest reachable offset.
func (p *ScrollPosition) MaxOffset() int {
	return p.max
}

// SetExtents sets the content and viewport heights and re-clamps the offset.
func (p *ScrollPosition) SetExtents(contentExtent, viewportExtent int) {
	p.max = max(0, contentExtent-viewportExtent)
	p.JumpTo(p.offset)
}

// JumpTo moves to offset, clamped to [0, MaxOffset].
func (p *ScrollPosition) JumpTo(offset int) {
	clamped := max(0, min(offset, p.max))
	if clamped == p.offset {
		return
	}
	p.offset = clamped
	for _, listener := range p.listeners {
		listener()
	}
}

// ScrollBy applies a user delta; positive moves toward the bottom.
// Returns the delta actually consumed after clamping.
func (p *ScrollPosition) ScrollBy(delta int) int {
	before := p.offset
	p.JumpTo(p.offset + delta)
	return p.offset - before
}

// CanScrollVertically implements VerticalScroller.
func (p *ScrollPosition) CanScrollVertically(direction int) bool {
	switch {
	case direction < 0:
		return p.offset > 0
	case direction > 0:
		return p.offset < p.max
	default:
		return false
	}
}

// AddListener registers fn to run whenever the offset changes.
// Returns an unsubscribe function.
func (p *ScrollPosition) AddListener(fn func()) func() {
	if p.listeners == nil {
		p.listeners = make(map[int]func())
	}
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		delete(p.listeners, id)
	}
}
