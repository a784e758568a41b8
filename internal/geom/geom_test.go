package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 5}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{2, 3}, true},    // top-left corner
		{Point{11, 7}, true},   // bottom-right inside cell
		{Point{12, 3}, false},  // one past right edge
		{Point{2, 8}, false},   // one past bottom edge
		{Point{1, 3}, false},   // left of rect
		{Point{5, 5}, true},    // middle
		{Point{-1, -1}, false}, // way outside
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	if (Rect{W: 10, H: 5}).Empty() {
		t.Error("10x5 rect should not be empty")
	}
	if !(Rect{W: 0, H: 5}).Empty() {
		t.Error("zero-width rect should be empty")
	}
	if !(Rect{W: 10, H: -2}).Empty() {
		t.Error("negative-height rect should be empty")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		b    Rect
		want bool
	}{
		{Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{Rect{X: 10, Y: 0, W: 5, H: 5}, false}, // touching edge, no shared cell
		{Rect{X: 9, Y: 9, W: 1, H: 1}, true},
		{Rect{X: -5, Y: -5, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestSplitHTilesExactly(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 80, H: 24}
	left, right := r.SplitH(30, 1)
	if left.W != 30 || right.X != 31 || right.W != 49 {
		t.Errorf("SplitH: left=%v right=%v", left, right)
	}
	if left.W+1+right.W != r.W {
		t.Errorf("split parts plus gap do not tile width: %d+1+%d != %d", left.W, right.W, r.W)
	}
}

func TestSplitHClamps(t *testing.T) {
	r := Rect{W: 10, H: 4}
	left, right := r.SplitH(100, 1)
	if left.W != 10 {
		t.Errorf("left width should clamp to rect width, got %d", left.W)
	}
	if right.W != 0 {
		t.Errorf("right width should clamp to zero, got %d", right.W)
	}
	left, _ = r.SplitH(-5, 1)
	if left.W != 0 {
		t.Errorf("negative left width should clamp to zero, got %d", left.W)
	}
}

func TestSplitVTilesExactly(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 80, H: 24}
	top, bottom := r.SplitV(10, 1)
	if top.H != 10 || bottom.Y != 11 || bottom.H != 13 {
		t.Errorf("SplitV: top=%v bottom=%v", top, bottom)
	}
}

func TestCutTop(t *testing.T) {
	r := Rect{X: 5, Y: 5, W: 20, H: 10}
	band, rest := r.CutTop(1)
	if band.H != 1 || band.Y != 5 || rest.Y != 6 || rest.H != 9 {
		t.Errorf("CutTop: band=%v rest=%v", band, rest)
	}
	band, rest = r.CutTop(50)
	if band.H != 10 || rest.H != 0 {
		t.Errorf("CutTop overflow: band=%v rest=%v", band, rest)
	}
}

func TestShrink(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	s := r.Shrink(2)
	if s != (Rect{X: 2, Y: 2, W: 6, H: 6}) {
		t.Errorf("Shrink(2) = %v", s)
	}
	s = r.Shrink(6)
	if !s.Empty() {
		t.Errorf("over-shrunk rect should be empty, got %v", s)
	}
}
