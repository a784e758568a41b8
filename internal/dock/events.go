package dock

import "dockspace/internal/geom"

// HandlePointer routes a normalized pointer event through the layout and
// reports whether the docking system consumed it. Priority order: an active
// splitter resize or tab drag first, then splitter bands, then tab strips,
// then the innermost panel under the pointer.
func (m *Manager) HandlePointer(ev PointerEvent) bool {
	if m.lastRect.Empty() {
		return false
	}
	m.ensureBounds(m.lastRect)

	if m.resize != nil {
		return m.handleResize(ev)
	}
	if !m.drag.idle() {
		return m.handleDrag(ev)
	}

	switch ev.Action {
	case PointerPress:
		if ev.Button != ButtonLeft {
			return m.forwardPointer(ev)
		}
		if id, ok := m.splitterAt(ev.Pos); ok {
			m.resize = &splitterDrag{node: id, last: ev.Pos}
			return true
		}
		if n, idx, hit := m.tabAt(ev.Pos); hit != tabHitNone {
			return m.handleTabPress(n, idx, hit, ev.Pos)
		}
		return m.forwardPointer(ev)
	case PointerMove:
		id, over := m.splitterAt(ev.Pos)
		if !over {
			id = 0
		}
		m.hoverSplit = id
		return over
	default:
		return m.forwardPointer(ev)
	}
}

// HandleKey routes a key event: an active drag owns esc, everything else
// goes to the focused panel.
func (m *Manager) HandleKey(ev KeyEvent) bool {
	if !m.drag.idle() && ev.Key == "esc" {
		m.drag.reset()
		return true
	}
	p, ok := m.reg.get(m.focused)
	if !ok {
		return false
	}
	return p.HandleEvent(ev)
}

// handleResize feeds pointer motion into the grabbed splitter.
func (m *Manager) handleResize(ev PointerEvent) bool {
	switch ev.Action {
	case PointerMove:
		path := m.tree.Find(m.resize.node)
		if path == nil {
			m.resize = nil
			return true
		}
		n := path[len(path)-1]
		delta := ev.Pos.X - m.resize.last.X
		if n.Dir == geom.Vertical {
			delta = ev.Pos.Y - m.resize.last.Y
		}
		if delta != 0 {
			m.ResizeSplit(m.resize.node, delta)
			m.resize.last = ev.Pos
		}
		return true
	case PointerRelease:
		m.resize = nil
		return true
	}
	return true
}

// handleDrag advances the tab drag state machine.
func (m *Manager) handleDrag(ev PointerEvent) bool {
	switch ev.Action {
	case PointerMove:
		m.drag.move(ev.Pos, m.cfg.DragThreshold)
		if m.drag.dragging() {
			if n, nb, ok := m.containerAt(ev.Pos); ok {
				m.drag.hover(n.ID, dropZones(n, nb, m.cfg))
			} else {
				m.drag.clearHover()
			}
		}
		return true
	case PointerRelease:
		dropped := m.drag.dragging() && m.drag.hasTarget
		panel, target := m.drag.panel, m.drag.target
		m.drag.reset()
		if dropped {
			// Undock+dock combined into one mutation; see Move.
			if err := m.Move(panel, target); err != nil {
				m.cfg.logf("dock: drop of %q failed: %v", panel, err)
			}
		}
		return true
	}
	return true
}

// handleTabPress resolves a press on a tab strip: close, or select + arm a
// possible drag. Selection happens on press, like every tab bar.
func (m *Manager) handleTabPress(n *Node, idx int, hit tabHit, pos geom.Point) bool {
	if idx < 0 || idx >= len(n.Panels) {
		return true
	}
	id := n.Panels[idx]
	if hit == tabHitClose {
		m.ClosePanel(id)
		return true
	}
	if m.tree.SetActiveTab(n.ID, idx) {
		m.invalidate()
		m.setFocus(id)
	}
	m.drag.arm(id, pos)
	return true
}

// forwardPointer hands the event to the active panel of the innermost Tabs
// node under the pointer, localized to that panel's content rectangle.
func (m *Manager) forwardPointer(ev PointerEvent) bool {
	n, nb, ok := m.containerAt(ev.Pos)
	if !ok || n.Kind != KindTabs || !nb.Content.Contains(ev.Pos) {
		return false
	}
	id := n.ActivePanel()
	p, ok := m.reg.get(id)
	if !ok {
		return false
	}
	if ev.Action == PointerPress {
		m.setFocus(id)
	}
	local := ev
	local.Pos = geom.Point{X: ev.Pos.X - nb.Content.X, Y: ev.Pos.Y - nb.Content.Y}
	return p.HandleEvent(local)
}

// splitterAt returns the deepest split whose grab band contains p.
func (m *Manager) splitterAt(p geom.Point) (NodeID, bool) {
	var found NodeID
	ok := false
	m.tree.Walk(func(n *Node) {
		if n.Kind != KindSplit {
			return
		}
		nb, cached := m.bounds[n.ID]
		if !cached {
			return
		}
		if splitterBand(nb, n.Dir, m.cfg.SplitterGrab).Contains(p) {
			found, ok = n.ID, true // deepest match wins; children visit later
		}
	})
	return found, ok
}

// tabAt returns the Tabs node and tab index under p, if p is on a tab strip.
func (m *Manager) tabAt(p geom.Point) (*Node, int, tabHit) {
	var node *Node
	idx, hit := -1, tabHitNone
	m.tree.Walk(func(n *Node) {
		if node != nil || n.Kind != KindTabs {
			return
		}
		nb, cached := m.bounds[n.ID]
		if !cached || !nb.TabBar.Contains(p) {
			return
		}
		strip := buildTabStrip(n, m.reg, nb.TabBar, m.cfg)
		if i, h := strip.hit(p); h != tabHitNone {
			node, idx, hit = n, i, h
		} else {
			node, idx, hit = n, -1, tabHitNone
		}
	})
	if node == nil {
		return nil, -1, tabHitNone
	}
	return node, idx, hit
}

// containerAt returns the innermost leaf container (Tabs or Empty) whose
// region contains p, with its cached bounds.
func (m *Manager) containerAt(p geom.Point) (*Node, NodeBounds, bool) {
	var node *Node
	var nb NodeBounds
	m.tree.Walk(func(n *Node) {
		if n.Kind == KindSplit {
			return
		}
		b, cached := m.bounds[n.ID]
		if cached && b.Rect.Contains(p) {
			node, nb = n, b
		}
	})
	return node, nb, node != nil
}
