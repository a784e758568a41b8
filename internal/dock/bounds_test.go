package dock

import (
	"testing"

	"dockspace/internal/geom"
)

// buildLayout returns a tree with three regions: a | (b / c).
func buildLayout(t *testing.T, cfg Config) *Tree {
	t.Helper()
	tr := NewTree(cfg)
	root := tr.Root()
	if !tr.Insert("a", ZoneTarget(root.ID, SideCenter)) {
		t.Fatal("dock a failed")
	}
	if !tr.Insert("b", ZoneTarget(root.ID, SideRight)) {
		t.Fatal("dock b failed")
	}
	if !tr.Insert("c", ZoneTarget(root.Right.ID, SideBottom)) {
		t.Fatal("dock c failed")
	}
	return tr
}

// Leaf regions and splitter bands must tile the root rect exactly: no gaps,
// no overlap, every cell accounted for.
func TestComputeBoundsTilesRoot(t *testing.T) {
	cfg := quietConfig()
	tr := buildLayout(t, cfg)
	rect := geom.Rect{X: 0, Y: 0, W: 80, H: 24}
	bounds := ComputeBounds(tr.Root(), rect, cfg)

	var regions []geom.Rect
	tr.Walk(func(n *Node) {
		nb, ok := bounds[n.ID]
		if !ok {
			t.Fatalf("node %d missing from bounds map", n.ID)
		}
		if n.Kind == KindSplit {
			regions = append(regions, nb.Splitter)
		} else {
			regions = append(regions, nb.Rect)
		}
	})

	area := 0
	for i, r := range regions {
		area += r.W * r.H
		for j := i + 1; j < len(regions); j++ {
			if r.Intersects(regions[j]) {
				t.Fatalf("regions %v and %v overlap", r, regions[j])
			}
		}
	}
	if area != rect.W*rect.H {
		t.Fatalf("regions cover %d cells, root has %d", area, rect.W*rect.H)
	}
}

func TestComputeBoundsSplitChildren(t *testing.T) {
	cfg := quietConfig()
	tr := buildLayout(t, cfg)
	rect := geom.Rect{X: 0, Y: 0, W: 81, H: 24}
	bounds := ComputeBounds(tr.Root(), rect, cfg)

	root := tr.Root()
	left := bounds[root.Left.ID].Rect
	right := bounds[root.Right.ID].Rect
	bar := bounds[root.ID].Splitter

	if left.W+bar.W+right.W != rect.W {
		t.Fatalf("widths %d+%d+%d != %d", left.W, bar.W, right.W, rect.W)
	}
	if left.H != rect.H || right.H != rect.H {
		t.Fatal("horizontal split children must span full height")
	}
	// Ratio 0.5 over 80 usable cells.
	if left.W != 40 {
		t.Fatalf("left width = %d, want 40", left.W)
	}
}

func TestComputeBoundsTabsReservesBar(t *testing.T) {
	cfg := quietConfig()
	tr := NewTree(cfg)
	tr.Insert("a", ZoneTarget(tr.Root().ID, SideCenter))
	rect := geom.Rect{X: 0, Y: 0, W: 40, H: 10}
	bounds := ComputeBounds(tr.Root(), rect, cfg)

	nb := bounds[tr.Root().ID]
	if nb.TabBar.H != cfg.TabBarHeight || nb.TabBar.Y != 0 {
		t.Fatalf("tab bar = %v, want height %d at top", nb.TabBar, cfg.TabBarHeight)
	}
	if nb.Content.Y != cfg.TabBarHeight || nb.Content.H != rect.H-cfg.TabBarHeight {
		t.Fatalf("content = %v, want rest of rect", nb.Content)
	}
}

func TestComputeBoundsDegenerateRect(t *testing.T) {
	cfg := quietConfig()
	tr := buildLayout(t, cfg)
	for _, rect := range []geom.Rect{
		{W: 0, H: 24},
		{W: 80, H: 0},
		{W: -5, H: 10},
	} {
		if got := ComputeBounds(tr.Root(), rect, cfg); len(got) != 0 {
			t.Fatalf("rect %v: bounds map should be empty, got %d entries", rect, len(got))
		}
	}
}

func TestPrimaryExtentKeepsBothSidesVisible(t *testing.T) {
	tests := []struct {
		usable int
		ratio  float64
		want   int
	}{
		{100, 0.5, 50},
		{100, 0.05, 5},
		{10, 0.01, 1},  // floor at one cell
		{10, 0.99, 9},  // leave one cell for the other side
		{1, 0.9, 1},    // single cell goes to the first child
		{0, 0.5, 0},
	}
	for _, tt := range tests {
		if got := primaryExtent(tt.usable, tt.ratio); got != tt.want {
			t.Errorf("primaryExtent(%d, %v) = %d, want %d", tt.usable, tt.ratio, got, tt.want)
		}
	}
}
