package dock

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"dockspace/internal/geom"
)

// Manager is the central coordinator of the docking system. It exclusively
// owns the layout tree and the panel registry, keeps the bounds cache
// current, and routes input. All methods are synchronous and must be called
// from the host's event loop; nothing here may block or panic the host.
type Manager struct {
	cfg    Config
	tree   *Tree
	reg    *registry
	bounds BoundsMap

	lastRect geom.Rect
	dirty    bool

	drag       dragController
	resize     *splitterDrag
	hoverSplit NodeID
	focused    PanelID

	tracer oteltrace.Tracer
}

// NewManager creates a manager with an empty layout.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:    cfg,
		tree:   NewTree(cfg),
		reg:    newRegistry(),
		bounds: make(BoundsMap),
		tracer: otel.Tracer("dockspace/dock"),
	}
}

// RegisterPanel adds a panel implementation to the registry. The first
// panel registered into an empty layout is docked automatically so the
// workspace is never a bare rectangle.
func (m *Manager) RegisterPanel(p Panel) error {
	if !m.reg.add(p) {
		return fmt.Errorf("dock: panel %q already registered", p.ID())
	}
	if m.tree.Root().Kind == KindEmpty {
		return m.Dock(p.ID(), ZoneTarget(m.tree.Root().ID, SideCenter))
	}
	return nil
}

// UnregisterPanel removes a panel from the registry. A panel still docked
// is removed from the tree first, with the usual optimization pass.
func (m *Manager) UnregisterPanel(id PanelID) {
	if m.tree.FindPanel(id) != nil {
		m.Undock(id)
	}
	if _, ok := m.reg.remove(id); !ok {
		m.cfg.logf("dock: unregister of unknown panel %q ignored", id)
	}
}

// Dock inserts a registered panel at the target, optimizes, refreshes
// bounds, and notifies the panel. Unknown panels or stale targets are
// logged no-ops: a drag can race with panel removal and must never crash
// the workspace.
func (m *Manager) Dock(id PanelID, target DockTarget) error {
	_, span := m.tracer.Start(context.Background(), "dock.Dock", oteltrace.WithAttributes(
		attribute.String("panel.id", string(id)),
		attribute.String("target.side", target.Side.String()),
	))
	defer span.End()

	if !m.reg.has(id) {
		m.cfg.logf("dock: dock of unregistered panel %q ignored", id)
		return fmt.Errorf("dock: panel %q not registered", id)
	}
	if !m.tree.Insert(id, target) {
		m.cfg.logf("dock: target node %d for panel %q is stale, dock ignored", target.Node, id)
		return fmt.Errorf("dock: stale target node %d", target.Node)
	}
	m.tree.Optimize()
	m.invalidate()
	m.applyPreferredSize(id, target)
	if p, ok := m.reg.get(id); ok {
		p.OnDockChanged(true)
	}
	m.setFocus(id)
	return nil
}

// Undock removes a panel from the tree, leaving it registered but floating.
func (m *Manager) Undock(id PanelID) {
	_, span := m.tracer.Start(context.Background(), "dock.Undock", oteltrace.WithAttributes(
		attribute.String("panel.id", string(id)),
	))
	defer span.End()

	if !m.tree.RemovePanel(id) {
		m.cfg.logf("dock: undock of floating panel %q ignored", id)
		return
	}
	m.tree.Optimize()
	m.invalidate()
	if p, ok := m.reg.get(id); ok {
		p.OnDockChanged(false)
	}
	m.ensureFocus()
}

// Move relocates a docked panel to a new target as one tree mutation, so
// no intermediate empty state is ever rendered. This is the drop path of
// the drag controller.
func (m *Manager) Move(id PanelID, target DockTarget) error {
	_, span := m.tracer.Start(context.Background(), "dock.Move", oteltrace.WithAttributes(
		attribute.String("panel.id", string(id)),
		attribute.String("target.side", target.Side.String()),
	))
	defer span.End()

	if !m.reg.has(id) {
		m.cfg.logf("dock: move of unregistered panel %q ignored", id)
		return fmt.Errorf("dock: panel %q not registered", id)
	}
	if !m.tree.Insert(id, target) {
		m.cfg.logf("dock: move target node %d for panel %q is stale, ignored", target.Node, id)
		return fmt.Errorf("dock: stale target node %d", target.Node)
	}
	m.tree.Optimize()
	m.invalidate()
	m.setFocus(id)
	return nil
}

// ClosePanel handles the tab close control: the panel leaves the tree but
// stays registered. Panels reporting CanClose() == false are left alone.
func (m *Manager) ClosePanel(id PanelID) {
	if p, ok := m.reg.get(id); ok && !p.CanClose() {
		return
	}
	m.Undock(id)
}

// ResizeSplit converts a pointer delta (cells along the split axis) into a
// new ratio, clamps it against both the minimum fraction and the panels'
// minimum sizes, and refreshes bounds for the affected subtree only.
func (m *Manager) ResizeSplit(id NodeID, delta int) {
	path := m.tree.Find(id)
	if path == nil {
		m.cfg.logf("dock: resize of unknown split %d ignored", id)
		return
	}
	n := path[len(path)-1]
	if n.Kind != KindSplit {
		m.cfg.logf("dock: resize of non-split node %d ignored", id)
		return
	}
	nb, ok := m.bounds[id]
	if !ok || nb.Rect.Empty() {
		return
	}

	extent := nb.Rect.W - m.cfg.SplitterSize
	if n.Dir == geom.Vertical {
		extent = nb.Rect.H - m.cfg.SplitterSize
	}
	if extent < 2 {
		return
	}

	left := primaryExtent(extent, m.cfg.clampRatio(n.Ratio)) + delta

	lo := int(math.Ceil(float64(extent) * m.cfg.MinFraction))
	hi := extent - lo
	if minL, minR := m.minCells(n.Left, n.Dir), m.minCells(n.Right, n.Dir); minL+minR <= extent {
		if minL > lo {
			lo = minL
		}
		if extent-minR < hi {
			hi = extent - minR
		}
	}
	if left < lo {
		left = lo
	}
	if left > hi {
		left = hi
	}

	n.Ratio = m.cfg.clampRatio(float64(left) / float64(extent))
	computeBoundsInto(n, nb.Rect, m.cfg, m.bounds)
}

// minCells is the smallest extent (cells along dir) the subtree can show
// without violating any contained panel's MinSize.
func (m *Manager) minCells(n *Node, dir geom.Direction) int {
	switch n.Kind {
	case KindTabs:
		min := 1
		for _, pid := range n.Panels {
			p, ok := m.reg.get(pid)
			if !ok {
				continue
			}
			s := p.MinSize()
			v := s.W
			if dir == geom.Vertical {
				v = s.H + m.cfg.TabBarHeight
			}
			if v > min {
				min = v
			}
		}
		return min
	case KindSplit:
		l, r := m.minCells(n.Left, dir), m.minCells(n.Right, dir)
		if n.Dir == dir {
			return l + r + m.cfg.SplitterSize
		}
		if r > l {
			return r
		}
		return l
	default:
		return 1
	}
}

// applyPreferredSize nudges a freshly created split toward the docked
// panel's preferred size instead of an even 50/50, when bounds are known.
func (m *Manager) applyPreferredSize(id PanelID, target DockTarget) {
	if target.Kind != TargetZone || target.Side == SideCenter || m.lastRect.Empty() {
		return
	}
	owner := m.tree.FindPanel(id)
	if owner == nil {
		return
	}
	path := m.tree.Find(owner.ID)
	if len(path) < 2 {
		return
	}
	split := path[len(path)-2]
	if split.Kind != KindSplit {
		return
	}
	m.ensureBounds(m.lastRect)
	nb, ok := m.bounds[split.ID]
	if !ok || nb.Rect.Empty() {
		return
	}
	p, ok := m.reg.get(id)
	if !ok {
		return
	}
	pref := p.PreferredSize()
	extent := nb.Rect.W - m.cfg.SplitterSize
	want := pref.W
	if split.Dir == geom.Vertical {
		extent = nb.Rect.H - m.cfg.SplitterSize
		want = pref.H + m.cfg.TabBarHeight
	}
	if extent <= 0 || want <= 0 {
		return
	}
	ratio := float64(want) / float64(extent)
	if containsNode(split.Right, owner) {
		ratio = 1 - ratio
	}
	split.Ratio = m.cfg.clampRatio(ratio)
	m.invalidate()
}

func containsNode(root, target *Node) bool {
	found := false
	walk(root, func(n *Node) {
		if n == target {
			found = true
		}
	})
	return found
}

// PanelNode returns the Tabs node currently holding a panel, for building
// dock targets relative to it.
func (m *Manager) PanelNode(id PanelID) (NodeID, bool) {
	if n := m.tree.FindPanel(id); n != nil {
		return n.ID, true
	}
	return 0, false
}

// RootNode returns the id of the layout root.
func (m *Manager) RootNode() NodeID {
	return m.tree.Root().ID
}

// Bounds exposes the bounds cache for hosts and tests. Read-only.
func (m *Manager) Bounds() BoundsMap {
	return m.bounds
}

// Dragging reports whether a panel drag is in flight, and which panel.
func (m *Manager) Dragging() (PanelID, bool) {
	if m.drag.dragging() {
		return m.drag.panel, true
	}
	return "", false
}

func (m *Manager) invalidate() {
	m.dirty = true
}

func (m *Manager) ensureBounds(rect geom.Rect) {
	if rect == m.lastRect && !m.dirty {
		return
	}
	m.bounds = ComputeBounds(m.tree.Root(), rect, m.cfg)
	m.lastRect = rect
	m.dirty = false
}
