package dock

import (
	"testing"

	"dockspace/internal/geom"
)

func TestSplitterBandWidening(t *testing.T) {
	nb := NodeBounds{Splitter: geom.Rect{X: 40, Y: 0, W: 1, H: 24}}

	band := splitterBand(nb, geom.Horizontal, 1)
	want := geom.Rect{X: 39, Y: 0, W: 3, H: 24}
	if band != want {
		t.Fatalf("band = %v, want %v", band, want)
	}

	nb = NodeBounds{Splitter: geom.Rect{X: 0, Y: 12, W: 80, H: 1}}
	band = splitterBand(nb, geom.Vertical, 2)
	want = geom.Rect{X: 0, Y: 10, W: 80, H: 5}
	if band != want {
		t.Fatalf("band = %v, want %v", band, want)
	}
}

func TestSplitterGrabRouting(t *testing.T) {
	m, _ := newTestManager(t, "a", "b")
	if err := m.Dock("b", ZoneTarget(m.RootNode(), SideRight)); err != nil {
		t.Fatal(err)
	}
	m.Render(testRect)

	// One cell beside the divider still grabs it.
	if !m.HandlePointer(press(39, 10)) {
		t.Fatal("press within the grab band must be consumed")
	}
	if m.resize == nil {
		t.Fatal("press on the splitter must start a resize")
	}

	m.HandlePointer(move(49, 10))
	root := m.tree.Root()
	left := m.Bounds()[root.Left.ID].Rect
	if left.W != 50 {
		t.Fatalf("left width after +10 drag = %d, want 50", left.W)
	}

	m.HandlePointer(release(49, 10))
	if m.resize != nil {
		t.Fatal("release must end the resize")
	}
}

func TestSplitterHoverTracking(t *testing.T) {
	m, _ := newTestManager(t, "a", "b")
	if err := m.Dock("b", ZoneTarget(m.RootNode(), SideRight)); err != nil {
		t.Fatal(err)
	}
	m.Render(testRect)

	m.HandlePointer(move(40, 10))
	if m.hoverSplit != m.tree.Root().ID {
		t.Fatal("moving over the divider must set hover")
	}
	m.HandlePointer(move(5, 10))
	if m.hoverSplit != 0 {
		t.Fatal("leaving the divider must clear hover")
	}
}
