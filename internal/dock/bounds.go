package dock

import (
	"math"

	"dockspace/internal/geom"
)

// NodeBounds is a node's last-computed geometry. Zero-value sub-rects mean
// the band does not apply to the node's kind.
type NodeBounds struct {
	Rect     geom.Rect // the node's full region
	TabBar   geom.Rect // Tabs: strip reserved at the top
	Content  geom.Rect // Tabs/Empty: area handed to the active panel
	Splitter geom.Rect // Split: divider band between the children
}

// BoundsMap is the bounds cache: every node's rectangle keyed by id,
// recomputed whenever the root rect, a ratio, or the topology changes.
// Hit-testing reads it instead of re-deriving geometry per event.
type BoundsMap map[NodeID]NodeBounds

// ComputeBounds lays the whole tree out inside rect. A degenerate rect
// (zero or negative extent) yields an empty map: the frame is simply not
// rendered and the engine resumes once a valid rect arrives.
func ComputeBounds(root *Node, rect geom.Rect, cfg Config) BoundsMap {
	m := make(BoundsMap)
	if root == nil || rect.Empty() {
		return m
	}
	computeBoundsInto(root, rect, cfg, m)
	return m
}

// computeBoundsInto recomputes the subtree rooted at n into m, overwriting
// stale entries. The manager uses this for subtree-only refreshes after a
// splitter resize.
func computeBoundsInto(n *Node, rect geom.Rect, cfg Config, m BoundsMap) {
	nb := NodeBounds{Rect: rect}
	switch n.Kind {
	case KindSplit:
		ratio := cfg.clampRatio(n.Ratio)
		if n.Dir == geom.Horizontal {
			usable := rect.W - cfg.SplitterSize
			leftW := primaryExtent(usable, ratio)
			left, right := rect.SplitH(leftW, cfg.SplitterSize)
			nb.Splitter = geom.Rect{X: rect.X + leftW, Y: rect.Y, W: cfg.SplitterSize, H: rect.H}
			m[n.ID] = nb
			computeBoundsInto(n.Left, left, cfg, m)
			computeBoundsInto(n.Right, right, cfg, m)
		} else {
			usable := rect.H - cfg.SplitterSize
			topH := primaryExtent(usable, ratio)
			top, bottom := rect.SplitV(topH, cfg.SplitterSize)
			nb.Splitter = geom.Rect{X: rect.X, Y: rect.Y + topH, W: rect.W, H: cfg.SplitterSize}
			m[n.ID] = nb
			computeBoundsInto(n.Left, top, cfg, m)
			computeBoundsInto(n.Right, bottom, cfg, m)
		}
	case KindTabs:
		nb.TabBar, nb.Content = rect.CutTop(cfg.TabBarHeight)
		m[n.ID] = nb
	case KindEmpty:
		nb.Content = rect
		m[n.ID] = nb
	}
}

// primaryExtent converts a ratio into whole cells for the first child,
// keeping at least one cell per side whenever there is room for both.
func primaryExtent(usable int, ratio float64) int {
	if usable <= 0 {
		return 0
	}
	n := int(math.Round(float64(usable) * ratio))
	if usable >= 2 {
		if n < 1 {
			n = 1
		}
		if n > usable-1 {
			n = usable - 1
		}
	} else if n > usable {
		n = usable
	}
	return n
}
