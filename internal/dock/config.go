package dock

import "log"

// Config carries the layout tunables. The zero value is not usable; start
// from DefaultConfig and override fields as needed.
type Config struct {
	// MinFraction is the smallest share of a split's primary axis either
	// side may occupy. Resizes past it are clamped, never rejected.
	MinFraction float64

	// DefaultRatio is the split ratio used when docking creates a new split.
	DefaultRatio float64

	// TabBarHeight is the rows reserved at the top of every Tabs node.
	TabBarHeight int

	// SplitterSize is the cells reserved for the divider between split children.
	SplitterSize int

	// SplitterGrab widens the splitter's interactive band by this many cells
	// on each side, so dragging does not require pixel-perfect aim.
	SplitterGrab int

	// DropZoneSize is the thickness of the side drop-zone bands during a drag,
	// clamped to a third of the hovered container's extent.
	DropZoneSize int

	// DragThreshold is how far (Chebyshev distance, cells) the pointer must
	// move from a pressed tab before a drag starts instead of a click.
	DragThreshold int

	// TabMinWidth/TabMaxWidth clamp individual tab widths in the tab strip.
	TabMinWidth int
	TabMaxWidth int

	// Logf receives recoverable-condition messages (stale ids, dropped panels).
	// Defaults to log.Printf; hosts running a TUI usually redirect it.
	Logf func(format string, args ...any)
}

// DefaultConfig returns the tunables used by the workspace binary.
func DefaultConfig() Config {
	return Config{
		MinFraction:   0.05,
		DefaultRatio:  0.5,
		TabBarHeight:  1,
		SplitterSize:  1,
		SplitterGrab:  1,
		DropZoneSize:  3,
		DragThreshold: 2,
		TabMinWidth:   8,
		TabMaxWidth:   24,
		Logf:          log.Printf,
	}
}

func (c Config) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

func (c Config) clampRatio(ratio float64) float64 {
	min := c.MinFraction
	if min <= 0 || min >= 0.5 {
		min = 0.05
	}
	if ratio < min {
		return min
	}
	if ratio > 1-min {
		return 1 - min
	}
	return ratio
}
