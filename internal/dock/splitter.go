package dock

import (
	"strings"

	"dockspace/internal/geom"
)

// splitterDrag tracks an in-flight divider resize: which split, and the
// pointer position of the previous move so deltas accumulate.
type splitterDrag struct {
	node NodeID
	last geom.Point
}

// splitterBand returns the splitter's interactive area: the visible divider
// widened by grab cells on each side along the split axis, so dragging does
// not require hitting the one-cell bar exactly.
func splitterBand(nb NodeBounds, dir geom.Direction, grab int) geom.Rect {
	band := nb.Splitter
	if dir == geom.Horizontal {
		band.X -= grab
		band.W += 2 * grab
	} else {
		band.Y -= grab
		band.H += 2 * grab
	}
	return band
}

// renderSplitter paints the divider bar inside its band. Hover and active
// drags share the highlighted style; the band is one cell thick, so a
// vertical divider is a column of box-drawing bars and a horizontal one a
// single line row.
func renderSplitter(nb NodeBounds, dir geom.Direction, hot bool) string {
	r := nb.Splitter
	if r.Empty() {
		return ""
	}
	style := chrome.Splitter
	if hot {
		style = chrome.SplitterHot
	}
	if dir == geom.Horizontal {
		col := strings.TrimSuffix(strings.Repeat(strings.Repeat("│", r.W)+"\n", r.H), "\n")
		return style.Render(col)
	}
	rows := make([]string, r.H)
	for i := range rows {
		rows[i] = strings.Repeat("─", r.W)
	}
	return style.Render(strings.Join(rows, "\n"))
}
