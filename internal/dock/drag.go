package dock

import "dockspace/internal/geom"

// dragPhase is the drag/drop controller's state. The zero value is idle, so
// drop zones and targets are representable only while a drag is live.
type dragPhase uint8

const (
	dragIdle dragPhase = iota
	// dragArmed: pointer pressed on a tab body; becomes a drag once the
	// pointer travels past the threshold, or evaporates on release (a click).
	dragArmed
	dragActive
)

// DropZone is one candidate landing area shown while a panel is dragged:
// a band at the hovered container's edge, or its center.
type DropZone struct {
	Bounds geom.Rect
	Side   Side
	Target DockTarget
}

// dragController tracks an in-flight panel relocation. Created on
// press+threshold, mutated every pointer move, consumed or discarded on
// release. Terminal states are not retained: the controller always returns
// to idle with all fields cleared.
type dragController struct {
	phase     dragPhase
	panel     PanelID
	origin    geom.Point
	pos       geom.Point
	hoverNode NodeID
	zones     []DropZone
	target    DockTarget
	hasTarget bool
}

func (d *dragController) idle() bool { return d.phase == dragIdle }

func (d *dragController) dragging() bool { return d.phase == dragActive }

// arm records a pressed tab as a drag candidate without starting the drag.
func (d *dragController) arm(panel PanelID, origin geom.Point) {
	*d = dragController{phase: dragArmed, panel: panel, origin: origin, pos: origin}
}

// reset returns the controller to idle, dropping all transient state.
func (d *dragController) reset() {
	*d = dragController{}
}

// move advances the state machine for a pointer move and reports whether an
// armed candidate crossed the threshold into a live drag.
func (d *dragController) move(pos geom.Point, threshold int) bool {
	d.pos = pos
	if d.phase == dragArmed && chebyshev(d.origin, pos) >= threshold {
		d.phase = dragActive
		return true
	}
	return false
}

// hover installs the drop zones of the container currently under the
// pointer and resolves which zone, if any, contains it. Only meaningful
// while dragging.
func (d *dragController) hover(node NodeID, zones []DropZone) {
	d.hoverNode = node
	d.zones = zones
	d.hasTarget = false
	for _, z := range zones {
		if z.Bounds.Contains(d.pos) {
			d.target = z.Target
			d.hasTarget = true
			return
		}
	}
}

// clearHover drops the current candidate when the pointer leaves every
// container (e.g. over a splitter band).
func (d *dragController) clearHover() {
	d.hoverNode = 0
	d.zones = nil
	d.hasTarget = false
}

// dropZones derives the five candidate bands for a container: one per side,
// each a fixed-thickness band clamped to a third of the container, plus the
// remaining center. Empty nodes only offer center (they convert to a Tabs
// node); splits are never leaf containers here.
func dropZones(n *Node, nb NodeBounds, cfg Config) []DropZone {
	r := nb.Rect
	if r.Empty() {
		return nil
	}
	if n.Kind == KindEmpty {
		return []DropZone{{Bounds: r, Side: SideCenter, Target: ZoneTarget(n.ID, SideCenter)}}
	}

	hband := clampBand(cfg.DropZoneSize, r.W)
	vband := clampBand(cfg.DropZoneSize, r.H)
	zones := []DropZone{
		{Bounds: geom.Rect{X: r.X, Y: r.Y, W: hband, H: r.H}, Side: SideLeft},
		{Bounds: geom.Rect{X: r.X + r.W - hband, Y: r.Y, W: hband, H: r.H}, Side: SideRight},
		{Bounds: geom.Rect{X: r.X, Y: r.Y, W: r.W, H: vband}, Side: SideTop},
		{Bounds: geom.Rect{X: r.X, Y: r.Y + r.H - vband, W: r.W, H: vband}, Side: SideBottom},
		{Bounds: geom.Rect{X: r.X + hband, Y: r.Y + vband, W: r.W - 2*hband, H: r.H - 2*vband}, Side: SideCenter},
	}
	for i := range zones {
		zones[i].Target = ZoneTarget(n.ID, zones[i].Side)
	}
	return zones
}

// clampBand keeps a drop band at most a third of the container's extent and
// at least one cell.
func clampBand(size, extent int) int {
	if third := extent / 3; size > third {
		size = third
	}
	if size < 1 {
		size = 1
	}
	return size
}

func chebyshev(a, b geom.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
