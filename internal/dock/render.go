package dock

import (
	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/geom"
)

// Render composes the whole workspace inside bounds. Bounds are recomputed
// when the root rect or the topology changed since the last call. The
// engine draws only chrome (tab strips, splitters, overlays); panel pixels
// come from each panel's own Render call. A degenerate rect is a no-render
// frame and yields "".
func (m *Manager) Render(bounds geom.Rect) string {
	if bounds.Empty() {
		return ""
	}
	m.ensureBounds(bounds)
	return m.renderNode(m.tree.Root())
}

func (m *Manager) renderNode(n *Node) string {
	nb, ok := m.bounds[n.ID]
	if !ok || nb.Rect.Empty() {
		return ""
	}
	switch n.Kind {
	case KindSplit:
		hot := m.hoverSplit == n.ID || (m.resize != nil && m.resize.node == n.ID)
		bar := renderSplitter(nb, n.Dir, hot)
		if n.Dir == geom.Horizontal {
			return lipgloss.JoinHorizontal(lipgloss.Top, m.renderNode(n.Left), bar, m.renderNode(n.Right))
		}
		return lipgloss.JoinVertical(lipgloss.Left, m.renderNode(n.Left), bar, m.renderNode(n.Right))
	case KindTabs:
		strip := buildTabStrip(n, m.reg, nb.TabBar, m.cfg)
		focused := n.ActivePanel() != "" && n.ActivePanel() == m.focused
		bar := fit(strip.render(focused), nb.TabBar)
		return lipgloss.JoinVertical(lipgloss.Left, bar, m.renderContent(n, nb))
	case KindEmpty:
		if m.drag.dragging() && m.drag.hoverNode == n.ID {
			return m.renderDropOverlay(nb.Content)
		}
		hint := chrome.EmptyRegion.Render("drop a panel here")
		return fit(lipgloss.Place(nb.Content.W, nb.Content.H, lipgloss.Center, lipgloss.Center, hint), nb.Content)
	}
	return ""
}

func (m *Manager) renderContent(n *Node, nb NodeBounds) string {
	if nb.Content.Empty() {
		return ""
	}
	if m.drag.dragging() && m.drag.hoverNode == n.ID {
		return m.renderDropOverlay(nb.Content)
	}
	id := n.ActivePanel()
	p, ok := m.reg.get(id)
	if !ok {
		hint := chrome.EmptyRegion.Render(string(id) + " (not registered)")
		return fit(lipgloss.Place(nb.Content.W, nb.Content.H, lipgloss.Center, lipgloss.Center, hint), nb.Content)
	}
	return fit(p.Render(nb.Content), nb.Content)
}

// renderDropOverlay replaces the hovered container's content with the
// drop-zone visualization: the live zone's action, highlighted.
func (m *Manager) renderDropOverlay(content geom.Rect) string {
	label := "release to cancel"
	style := chrome.DropHint
	if m.drag.hasTarget {
		style = chrome.DropZone
		switch m.drag.target.Side {
		case SideCenter:
			label = " add as tab "
		default:
			label = " dock " + m.drag.target.Side.String() + " "
		}
	}
	return fit(lipgloss.Place(content.W, content.H, lipgloss.Center, lipgloss.Center, style.Render(label)), content)
}
