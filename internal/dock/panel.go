package dock

import "dockspace/internal/geom"

// Panel is the contract the engine requires from each hosted panel. The
// engine never looks inside a panel: it hands it a rectangle to render into
// and events already localized to that rectangle, and consults the metadata
// methods when laying out and closing.
//
// Render and HandleEvent are invoked synchronously on the host's event loop;
// implementations must not block, since doing so stalls the entire frame.
type Panel interface {
	// ID is the stable identity the layout tree references.
	ID() PanelID

	// Title is the display name used by the tab strip.
	Title() string

	// Render draws the panel into the given rectangle only. Bounds change on
	// every resize and dock event; no fixed size may be assumed.
	Render(bounds geom.Rect) string

	// HandleEvent receives an event localized to the panel's bounds and
	// reports whether the panel consumed it.
	HandleEvent(ev Event) bool

	// MinSize and PreferredSize are consulted when clamping split ratios and
	// choosing default dock sizes.
	MinSize() geom.Size
	PreferredSize() geom.Size

	// CanClose gates whether the tab strip shows and honors a close control.
	CanClose() bool

	// OnDockChanged fires when the panel is docked into or removed from the
	// layout tree.
	OnDockChanged(docked bool)

	// OnActiveChanged fires when the panel gains or loses focus.
	OnActiveChanged(active bool)
}

// registry owns the PanelID -> implementation mapping, outside the tree.
// The tree holds only identifiers, so implementations can be swapped or
// reloaded without touching topology.
type registry struct {
	panels map[PanelID]Panel
}

func newRegistry() *registry {
	return &registry{panels: make(map[PanelID]Panel)}
}

func (r *registry) add(p Panel) bool {
	id := p.ID()
	if _, dup := r.panels[id]; dup {
		return false
	}
	r.panels[id] = p
	return true
}

func (r *registry) remove(id PanelID) (Panel, bool) {
	p, ok := r.panels[id]
	if ok {
		delete(r.panels, id)
	}
	return p, ok
}

func (r *registry) get(id PanelID) (Panel, bool) {
	p, ok := r.panels[id]
	return p, ok
}

func (r *registry) has(id PanelID) bool {
	_, ok := r.panels[id]
	return ok
}
