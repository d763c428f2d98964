package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/config"
	"github.com/go-drift/pullrefresh/pkg/animation"
	rtesting "github.com/go-drift/pullrefresh/pkg/testing"
)

type harness struct {
	t     *testing.T
	model *Model
	clock *rtesting.FakeClock
	last  tea.Cmd
}

func newHarness(t *testing.T, cfg config.Config, opts Options) *harness {
	t.Helper()
	clock := rtesting.NewFakeClock()
	opts.Scheduler = animation.NewScheduler(clock)
	m, err := New(cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := &harness{t: t, model: m, clock: clock}
	h.send(tea.WindowSizeMsg{Width: 80, Height: 30})
	return h
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	_, h.last = h.model.Update(msg)
}

func (h *harness) key(k string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func (h *harness) mouse(action tea.MouseAction, x, y int) {
	button := tea.MouseButtonLeft
	if action == tea.MouseActionRelease {
		button = tea.MouseButtonNone
	}
	h.send(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}

// settle advances past the settle duration and delivers one frame.
func (h *harness) settle() {
	h.clock.Advance(time.Second)
	h.send(frameMsg(h.clock.Now()))
}

func TestMouseDragTriggersRefresh(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), Options{})
	c := h.model.Container()

	h.mouse(tea.MouseActionPress, 40, 1)
	h.mouse(tea.MouseActionMotion, 40, 12)
	h.mouse(tea.MouseActionMotion, 40, 20)
	if got := c.Movement(); got != 80 {
		t.Fatalf("Movement = %d, want 80", got)
	}
	if !strings.Contains(h.model.View(), "pull to refresh") {
		t.Errorf("header should show the pull hint:\n%s", h.model.View())
	}

	h.mouse(tea.MouseActionMotion, 40, 22)
	if !strings.Contains(h.model.View(), "release to refresh") {
		t.Errorf("header should show the release hint:\n%s", h.model.View())
	}
	h.mouse(tea.MouseActionRelease, 40, 22)
	if !c.IsRefreshing() {
		t.Fatal("expected refreshing after release past the header")
	}
	if h.last == nil {
		t.Fatal("expected commands for the refresh and the settle frame")
	}

	h.settle()
	if got := c.Movement(); got != c.HeaderHeight() {
		t.Fatalf("Movement = %d, want header height %d", got, c.HeaderHeight())
	}
	if !strings.Contains(h.model.View(), "refreshing") {
		t.Errorf("header should show the spinner:\n%s", h.model.View())
	}

	h.send(refreshDoneMsg{generation: h.model.generation})
	if c.IsRefreshing() {
		t.Fatal("refresh should finish")
	}
	h.settle()
	if got := c.Movement(); got != 0 {
		t.Fatalf("Movement = %d after finish, want 0", got)
	}
	if h.model.refreshes != 1 {
		t.Fatalf("refreshes = %d, want 1", h.model.refreshes)
	}
}

func TestStaleRefreshDoneIgnored(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), Options{})
	h.key("r")
	if !h.model.Container().IsRefreshing() {
		t.Fatal("expected refreshing")
	}
	h.send(refreshDoneMsg{generation: h.model.generation - 1})
	if !h.model.Container().IsRefreshing() {
		t.Fatal("stale completion should not stop the refresh")
	}
	h.key("s")
	if h.model.Container().IsRefreshing() {
		t.Fatal("stop key should finish the refresh")
	}
}

func TestPullKeyOnScrolledListScrollsFirst(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), Options{})
	for range 3 {
		h.key("j")
	}
	list, ok := h.model.Container().Content().(interface{ Offset() int })
	if !ok {
		t.Fatalf("content %T has no offset", h.model.Container().Content())
	}
	if got := list.Offset(); got != 3*cellHeight {
		t.Fatalf("Offset = %d, want %d", got, 3*cellHeight)
	}

	h.key("r")
	if got := list.Offset(); got != 0 {
		t.Errorf("Offset = %d, want 0 after pulling", got)
	}
	if h.model.Container().IsRefreshing() {
		t.Error("the scroll should consume most of the pull")
	}
}

func TestStaticContentPullsFromDown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Content.Kind = config.ContentStatic
	h := newHarness(t, cfg, Options{})

	h.mouse(tea.MouseActionPress, 40, 2)
	h.mouse(tea.MouseActionMotion, 40, 6)
	if got := h.model.Container().Movement(); got != 40 {
		t.Fatalf("Movement = %d, want 40", got)
	}
	if !strings.Contains(h.model.View(), "pull down to refresh") {
		t.Errorf("static label missing:\n%s", h.model.View())
	}
}

func TestHelpToggleRelayouts(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), Options{})
	before := h.model.Container().ContentFrame().Height()
	h.key("?")
	after := h.model.Container().ContentFrame().Height()
	if after >= before {
		t.Fatalf("content height %d should shrink below %d with full help", after, before)
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), Options{})
	h.key("q")
	if h.last == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := h.last().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestNoFrameWhileIdle(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), Options{})
	if cmd := h.model.nextFrame(); cmd != nil {
		t.Fatal("no frame should be scheduled without animations")
	}
}

func TestConfigReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	h := newHarness(t, config.DefaultConfig(), Options{ConfigPath: path})

	body := "config_version: v1\npull:\n  damping: 0.25\n  settle_duration: 50ms\nrefresh:\n  delay: 10ms\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	h.send(configChangedMsg{})

	c := h.model.Container()
	if got := c.DampingFactor(); got != 0.25 {
		t.Errorf("DampingFactor = %v, want 0.25", got)
	}
	anim, ok := c.Animator().(*animation.IntAnimator)
	if !ok {
		t.Fatalf("animator is %T", c.Animator())
	}
	if anim.Duration != 50*time.Millisecond {
		t.Errorf("Duration = %v, want 50ms", anim.Duration)
	}
	if h.model.cfg.Refresh.Delay != 10*time.Millisecond {
		t.Errorf("refresh delay = %v, want 10ms", h.model.cfg.Refresh.Delay)
	}
	if h.model.statusErr {
		t.Errorf("unexpected error status %q", h.model.status)
	}
}

func TestConfigReloadErrorKeepsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	h := newHarness(t, config.DefaultConfig(), Options{ConfigPath: path})
	if err := os.WriteFile(path, []byte("config_version: v9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	h.send(configChangedMsg{})
	if !h.model.statusErr {
		t.Fatal("expected an error status")
	}
	if got := h.model.Container().DampingFactor(); got != config.DefaultConfig().Pull.Damping {
		t.Fatalf("DampingFactor changed to %v", got)
	}
}

func TestGridRows(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Content = config.ContentConfig{Kind: config.ContentRecycler, Items: 9, ItemExtent: cellHeight, Layout: config.LayoutGrid, Span: 3}
	h := newHarness(t, cfg, Options{})
	view := h.model.View()
	for _, want := range []string{"item 000", "item 002", "item 008"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
