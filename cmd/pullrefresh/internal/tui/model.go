// Package tui hosts a pull-to-refresh container in a terminal.
//
// One terminal row is cellHeight device pixels tall, so the default
// 80px header spans four rows and each 20px list item one row.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/config"
	"github.com/go-drift/pullrefresh/pkg/animation"
	"github.com/go-drift/pullrefresh/pkg/gestures"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/layout"
	"github.com/go-drift/pullrefresh/pkg/refresh"
)

const (
	cellWidth  = 10
	cellHeight = 20

	frameInterval = 16 * time.Millisecond
	pullSteps     = 8
)

type frameMsg time.Time

type refreshDoneMsg struct{ generation int }

// Options configures a Model.
type Options struct {
	// Scheduler drives the settle animation. Nil uses the system clock.
	Scheduler *animation.Scheduler
	// ConfigPath is reloaded when Watcher reports a change to it.
	ConfigPath string
	Watcher    *fsnotify.Watcher
}

// Model is the bubbletea model of the demo.
type Model struct {
	cfg        config.Config
	configPath string
	watcher    *fsnotify.Watcher

	container *refresh.Container
	header    *refresh.DefaultHeader
	scheduler *animation.Scheduler

	keys     keyMap
	help     help.Model
	progress progress.Model
	spinner  spinner.Model

	width, height int
	ready         bool
	framePending  bool

	pointerDown bool
	pointerID   int64

	// refreshRequested is set by the refresh listener and consumed after
	// the event that triggered it.
	refreshRequested bool
	generation       int
	refreshes        int
	lastRefresh      time.Time

	status    string
	statusErr bool
}

// New creates a model for cfg.
func New(cfg config.Config, opts Options) (*Model, error) {
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = animation.NewScheduler(nil)
	}
	header := refresh.NewDefaultHeader()
	container, err := cfg.NewContainer(scheduler, header)
	if err != nil {
		return nil, err
	}

	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorDim)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(colorDim)
	h.Styles.FullKey = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(colorDim)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Background(colorHeader).Foreground(colorAccent)

	m := &Model{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		watcher:    opts.Watcher,
		container:  container,
		header:     header,
		scheduler:  scheduler,
		keys:       newKeyMap(),
		help:       h,
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		spinner:    s,
	}
	container.SetRefreshListener(func() { m.refreshRequested = true })
	return m, nil
}

// Container returns the hosted container.
func (m *Model) Container() *refresh.Container {
	return m.container
}

// Init binds the container to the event loop and starts watching the
// config file.
func (m *Model) Init() tea.Cmd {
	m.container.BindToCurrentGoroutine()
	return m.watch()
}

func (m *Model) watch() tea.Cmd {
	if m.watcher == nil || m.configPath == "" {
		return nil
	}
	return watchConfig(m.watcher, m.configPath)
}

// Update handles input, frames, and refresh completion.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.progress.Width = max(10, min(40, m.width-24))
		m.layoutContainer()

	case tea.KeyMsg:
		if m.handleKey(msg) {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		m.framePending = false
		m.scheduler.Step()

	case refreshDoneMsg:
		if msg.generation == m.generation && m.container.IsRefreshing() {
			m.finishRefresh()
		}

	case spinner.TickMsg:
		if m.container.IsRefreshing() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case configChangedMsg:
		m.reloadConfig()
		cmds = append(cmds, m.watch())

	case watchErrMsg:
		m.setError(fmt.Errorf("watch %s: %w", m.configPath, msg.err))
		cmds = append(cmds, m.watch())
	}

	if m.refreshRequested {
		m.refreshRequested = false
		cmds = append(cmds, m.startRefresh())
	}
	cmds = append(cmds, m.nextFrame())
	return m, tea.Batch(cmds...)
}

// handleKey reports whether the program should quit.
func (m *Model) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layoutContainer()
	case key.Matches(msg, m.keys.Pull):
		m.simulatePull()
	case key.Matches(msg, m.keys.Stop):
		if m.container.IsRefreshing() {
			m.finishRefresh()
		}
	case key.Matches(msg, m.keys.ScrollDown):
		m.scrollBy(cellHeight)
	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollBy(-cellHeight)
	case key.Matches(msg, m.keys.Top):
		if s, ok := m.container.Content().(interface{ JumpTo(int) }); ok {
			s.JumpTo(0)
		}
	}
	return false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.ready {
		return
	}
	pos := cellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.Y >= m.bodyRows() {
				return
			}
			m.pointerID++
			m.pointerDown = true
			m.dispatch(pos, gestures.PointerPhaseDown)
		case tea.MouseButtonWheelUp:
			m.scrollBy(-cellHeight)
		case tea.MouseButtonWheelDown:
			m.scrollBy(cellHeight)
		}
	case tea.MouseActionMotion:
		if m.pointerDown {
			m.dispatch(pos, gestures.PointerPhaseMove)
		}
	case tea.MouseActionRelease:
		if m.pointerDown {
			m.pointerDown = false
			m.dispatch(pos, gestures.PointerPhaseUp)
		}
	}
}

func (m *Model) dispatch(pos graphics.Offset, phase gestures.PointerPhase) {
	m.container.DispatchPointer(gestures.PointerEvent{
		PointerID: m.pointerID,
		Position:  pos,
		Phase:     phase,
	})
}

// simulatePull drags from the top row far enough to arm a refresh at the
// current damping factor.
func (m *Model) simulatePull() {
	if !m.ready || m.pointerDown {
		return
	}
	distance := float64(m.container.HeaderHeight())/m.container.DampingFactor() + 2*cellHeight
	start := cellCenter(m.width/2, 0)
	m.pointerID++
	m.dispatch(start, gestures.PointerPhaseDown)
	for i := 1; i <= pullSteps; i++ {
		pos := start.Add(graphics.Offset{Y: distance * float64(i) / pullSteps})
		m.dispatch(pos, gestures.PointerPhaseMove)
	}
	m.dispatch(start.Add(graphics.Offset{Y: distance}), gestures.PointerPhaseUp)
}

func (m *Model) scrollBy(delta int) {
	if s, ok := m.container.Content().(interface{ ScrollBy(int) int }); ok {
		s.ScrollBy(delta)
	}
}

func (m *Model) startRefresh() tea.Cmd {
	m.generation++
	generation := m.generation
	m.setStatus("refreshing...")
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(m.cfg.Refresh.Delay, func(time.Time) tea.Msg {
			return refreshDoneMsg{generation: generation}
		}),
	)
}

func (m *Model) finishRefresh() {
	m.container.StopRefreshing()
	m.refreshes++
	m.lastRefresh = m.scheduler.Now()
	m.setStatus(fmt.Sprintf("refreshed at %s", m.lastRefresh.Format("15:04:05")))
}

// nextFrame schedules a frame while any settle animation runs.
func (m *Model) nextFrame() tea.Cmd {
	if m.framePending || !m.scheduler.HasActiveTickers() {
		return nil
	}
	m.framePending = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) reloadConfig() {
	cfg, err := config.Load(m.configPath)
	if err != nil {
		m.setError(err)
		return
	}
	m.container.SetDampingFactor(cfg.Pull.Damping)
	if anim, ok := m.container.Animator().(*animation.IntAnimator); ok {
		anim.Duration = cfg.Pull.SettleDuration
		if curve, err := animation.CurveByName(cfg.Pull.Curve); err == nil {
			anim.Curve = curve
		}
	}
	m.cfg.Pull.Damping = cfg.Pull.Damping
	m.cfg.Pull.SettleDuration = cfg.Pull.SettleDuration
	m.cfg.Pull.Curve = cfg.Pull.Curve
	m.cfg.Refresh = cfg.Refresh
	m.setStatus(fmt.Sprintf("reloaded %s", m.configPath))
}

func (m *Model) layoutContainer() {
	if !m.ready {
		return
	}
	size := graphics.Size{Width: m.width * cellWidth, Height: m.bodyRows() * cellHeight}
	m.container.Measure(layout.Tight(size))
	m.container.Layout(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func cellCenter(col, row int) graphics.Offset {
	return graphics.Offset{
		X: float64(col*cellWidth + cellWidth/2),
		Y: float64(row*cellHeight + cellHeight/2),
	}
}
