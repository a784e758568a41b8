package dock

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/geom"
	"dockspace/internal/textutil"
)

// closeGlyph is appended to closable tabs; clicking it requests removal.
const closeGlyph = "×"

// tabHit classifies where inside the strip a pointer landed.
type tabHit uint8

const (
	tabHitNone tabHit = iota
	tabHitBody
	tabHitClose
)

// tabStrip is the laid-out tab bar of one Tabs node: per-tab cells and
// close sub-cells, derived from the node, the registry, and the strip rect.
// Rebuilt on demand; it holds no state of its own.
type tabStrip struct {
	node    *Node
	bar     geom.Rect
	titles  []string
	closers []bool      // per tab: close control shown
	cells   []geom.Rect // per tab: full clickable cell
	closes  []geom.Rect // per tab: close sub-cell (zero when not closable)
}

// buildTabStrip lays the node's tabs out left to right at fixed height.
// Tabs whose panel is missing from the registry still get a cell (titled by
// id) so hit indexes always match the node's panel order.
func buildTabStrip(n *Node, reg *registry, bar geom.Rect, cfg Config) *tabStrip {
	s := &tabStrip{node: n, bar: bar}
	count := len(n.Panels)
	if count == 0 || bar.Empty() {
		return s
	}

	width := bar.W / count
	if width < cfg.TabMinWidth {
		width = cfg.TabMinWidth
	}
	if width > cfg.TabMaxWidth {
		width = cfg.TabMaxWidth
	}

	x := bar.X
	for _, id := range n.Panels {
		title := string(id)
		closable := true
		if p, ok := reg.get(id); ok {
			title = p.Title()
			closable = p.CanClose()
		}
		w := width
		if x+w > bar.X+bar.W {
			w = bar.X + bar.W - x
		}
		cell := geom.Rect{X: x, Y: bar.Y, W: w, H: bar.H}
		var closeCell geom.Rect
		if closable && w >= cfg.TabMinWidth {
			// Rightmost two cells of the tab act as the close control.
			closeCell = geom.Rect{X: cell.X + cell.W - 2, Y: cell.Y, W: 2, H: cell.H}
		}
		s.titles = append(s.titles, title)
		s.closers = append(s.closers, closable)
		s.cells = append(s.cells, cell)
		s.closes = append(s.closes, closeCell)
		x += w
		if x >= bar.X+bar.W {
			break
		}
	}
	return s
}

// hit resolves a pointer position to a tab index and the part hit. The
// close sub-cell wins over the tab body.
func (s *tabStrip) hit(p geom.Point) (int, tabHit) {
	for i, cell := range s.cells {
		if !cell.Contains(p) {
			continue
		}
		if !s.closes[i].Empty() && s.closes[i].Contains(p) {
			return i, tabHitClose
		}
		return i, tabHitBody
	}
	return -1, tabHitNone
}

// render paints the strip. The container's focus state picks the active
// tab's style so the focused region is visible at a glance.
func (s *tabStrip) render(focused bool) string {
	if s.bar.Empty() {
		return ""
	}
	var b strings.Builder
	used := 0
	for i, cell := range s.cells {
		if i >= len(s.titles) {
			break
		}
		label := s.titles[i]
		inner := cell.W - 1 // leading space
		if s.closers[i] && !s.closes[i].Empty() {
			inner -= 2
		}
		if inner < 1 {
			continue
		}
		text := " " + textutil.Pad(label, inner)

		style := chrome.TabInactive
		if i == s.node.Active {
			style = chrome.TabActive
			if focused {
				style = chrome.TabFocused
			}
		}
		if s.closers[i] && !s.closes[i].Empty() {
			b.WriteString(style.Render(text) + chrome.TabClose.Inherit(style).Render(" "+closeGlyph))
		} else {
			b.WriteString(style.Render(text))
		}
		used += cell.W
	}
	if used < s.bar.W {
		b.WriteString(chrome.TabBarFill.Render(strings.Repeat(" ", s.bar.W-used)))
	}
	return lipgloss.NewStyle().MaxWidth(s.bar.W).Render(b.String())
}
