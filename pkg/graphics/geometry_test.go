package graphics

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(0, -80, 320, 80)
	if r.Bottom != 0 || r.Right != 320 {
		t.Errorf("RectFromLTWH = %+v, want bottom 0 right 320", r)
	}
	if r.Height() != 80 {
		t.Errorf("Height() = %d, want 80", r.Height())
	}
}

func TestRectIntersect(t *testing.T) {
	header := Rect{Left: 0, Top: -30, Right: 100, Bottom: 50}
	viewport := Rect{Left: 0, Top: 0, Right: 100, Bottom: 200}
	got := header.Intersect(viewport)
	want := Rect{Left: 0, Top: 0, Right: 100, Bottom: 50}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	hidden := Rect{Left: 0, Top: -80, Right: 100, Bottom: 0}
	if !hidden.Intersect(viewport).IsEmpty() {
		t.Error("fully hidden header should not intersect the viewport")
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 10, 10, 10)
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 10, Y: 10}, true},
		{Offset{X: 19.5, Y: 19.5}, true},
		{Offset{X: 20, Y: 15}, false},
		{Offset{X: 5, Y: 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x12, 0xab, 0xff).Hex(); got != "#12abff" {
		t.Errorf("Hex() = %q, want #12abff", got)
	}
}

func TestColorLerp(t *testing.T) {
	if got := Lerp(ColorBlack, ColorWhite, 0); got != ColorBlack {
		t.Errorf("Lerp(t=0) = %#x, want black", uint32(got))
	}
	if got := Lerp(ColorBlack, ColorWhite, 1); got != ColorWhite {
		t.Errorf("Lerp(t=1) = %#x, want white", uint32(got))
	}
	mid := Lerp(RGB(0, 0, 0), RGB(200, 100, 0), 0.5)
	if mid != RGB(100, 50, 0) {
		t.Errorf("Lerp(t=0.5) = %#x, want %#x", uint32(mid), uint32(RGB(100, 50, 0)))
	}
}
