package refresh

import (
	"testing"

	"github.com/go-drift/pullrefresh/pkg/content"
	"github.com/go-drift/pullrefresh/pkg/graphics"
	"github.com/go-drift/pullrefresh/pkg/layout"
)

func TestProgressFor(t *testing.T) {
	tests := []struct {
		movement, headerHeight, want int
	}{
		{0, 80, 0},
		{1, 80, 1},
		{40, 80, 50},
		{50, 80, 63},
		{80, 80, 100},
		{500, 80, 100},
		{-10, 80, 0},
		{30, 0, 0},
	}
	for _, tt := range tests {
		if got := progressFor(tt.movement, tt.headerHeight); got != tt.want {
			t.Errorf("progressFor(%d, %d) = %d, want %d", tt.movement, tt.headerHeight, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	list := content.NewScrollList(20, 40)
	list.Measure(layout.Tight(graphics.Size{Width: 100, Height: 200}))
	rv := content.NewRecycler(20, content.NewLinearLayoutManager(40))
	rv.Measure(layout.Tight(graphics.Size{Width: 100, Height: 200}))

	tests := []struct {
		name      string
		child     layout.Child
		kind      ContentKind
		atTop     bool
		scrollTo  int
		atTopThen bool
	}{
		{name: "static", child: content.NewStatic("x"), kind: ContentPlain, atTop: true, atTopThen: true},
		{name: "box", child: &layout.Box{}, kind: ContentPlain, atTop: true, atTopThen: true},
		{name: "list", child: list, kind: ContentListLike, atTop: true, scrollTo: 1, atTopThen: false},
		{name: "recycler", child: rv, kind: ContentRecyclerLike, atTop: true, scrollTo: 1, atTopThen: false},
	}
	for _, tt := range tests {
		adapter := classify(tt.child)
		if adapter.kind != tt.kind {
			t.Errorf("%s: kind = %v, want %v", tt.name, adapter.kind, tt.kind)
		}
		if got := adapter.atTop(); got != tt.atTop {
			t.Errorf("%s: atTop = %v, want %v", tt.name, got, tt.atTop)
		}
		if s, ok := tt.child.(interface{ JumpTo(int) }); ok {
			s.JumpTo(tt.scrollTo)
		}
		if got := adapter.atTop(); got != tt.atTopThen {
			t.Errorf("%s: atTop after scroll = %v, want %v", tt.name, got, tt.atTopThen)
		}
	}
}

func TestContentKindString(t *testing.T) {
	tests := []struct {
		kind ContentKind
		want string
	}{
		{ContentPlain, "plain"},
		{ContentListLike, "list"},
		{ContentRecyclerLike, "recycler"},
		{ContentKind(9), "ContentKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDefaultHeaderClampsProgress(t *testing.T) {
	h := NewDefaultHeader()
	h.SetProgress(150)
	if h.Indicator.Progress != 100 {
		t.Errorf("progress = %d, want 100", h.Indicator.Progress)
	}
	h.SetProgress(-5)
	if h.Indicator.Progress != 0 {
		t.Errorf("progress = %d, want 0", h.Indicator.Progress)
	}
	h.SetProgress(25)
	if f := h.Indicator.Fraction(); f != 0.25 {
		t.Errorf("fraction = %v, want 0.25", f)
	}
	if (ProgressIndicator{}).Fraction() != 0 {
		t.Error("zero Max should give zero fraction")
	}
}
