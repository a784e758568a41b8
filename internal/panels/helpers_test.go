package panels

import (
	"dockspace/internal/dock"
	"dockspace/internal/geom"
)

func testBounds(w, h int) geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: w, H: h}
}

func keyEvent(key string) dock.Event {
	return dock.KeyEvent{Key: key}
}
