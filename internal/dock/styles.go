package dock

import (
	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/geom"
)

// Theme colors for the workspace chrome
const (
	colorTabActive    = "63"  // indigo - selected tab background
	colorTabInactive  = "237" // dark gray - unselected tab background
	colorTabText      = "252" // light gray - tab labels
	colorTabDim       = "244" // mid gray - unselected tab labels
	colorSplitter     = "240" // gray - divider bars
	colorSplitterHot  = "75"  // blue - hovered/dragged divider
	colorDropZone     = "39"  // bright blue - drop-zone highlight
	colorEmptyHint    = "241" // gray - empty-region placeholder text
	colorCloseGlyph   = "203" // soft red - tab close control
	colorFocusedTitle = "86"  // cyan - focused panel's tab label
)

// chrome contains the shared style definitions for everything the engine
// draws itself: tab strips, splitters, drop zones, and empty regions.
var chrome = struct {
	TabActive    lipgloss.Style // selected tab cell
	TabInactive  lipgloss.Style // unselected tab cell
	TabFocused   lipgloss.Style // selected tab cell of the focused container
	TabBarFill   lipgloss.Style // unused remainder of the strip
	TabClose     lipgloss.Style // close glyph inside a tab
	Splitter     lipgloss.Style // divider bar
	SplitterHot  lipgloss.Style // divider bar under the pointer or mid-drag
	DropZone     lipgloss.Style // highlighted drop-zone band
	DropHint     lipgloss.Style // label naming the hovered zone
	EmptyRegion  lipgloss.Style // placeholder for Empty nodes
}{
	TabActive: lipgloss.NewStyle().
		Background(lipgloss.Color(colorTabActive)).
		Foreground(lipgloss.Color(colorTabText)).
		Bold(true),
	TabInactive: lipgloss.NewStyle().
		Background(lipgloss.Color(colorTabInactive)).
		Foreground(lipgloss.Color(colorTabDim)),
	TabFocused: lipgloss.NewStyle().
		Background(lipgloss.Color(colorTabActive)).
		Foreground(lipgloss.Color(colorFocusedTitle)).
		Bold(true),
	TabBarFill: lipgloss.NewStyle().
		Background(lipgloss.Color("235")),
	TabClose: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorCloseGlyph)),
	Splitter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSplitter)),
	SplitterHot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSplitterHot)).
		Bold(true),
	DropZone: lipgloss.NewStyle().
		Background(lipgloss.Color(colorDropZone)).
		Foreground(lipgloss.Color("231")).
		Bold(true),
	DropHint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorDropZone)).
		Bold(true),
	EmptyRegion: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorEmptyHint)).
		Italic(true),
}

// fit renders s clipped and padded to exactly rect's width and height so
// tree composition via joins reproduces the computed bounds cell for cell.
func fit(s string, rect geom.Rect) string {
	return lipgloss.NewStyle().
		Width(rect.W).
		Height(rect.H).
		MaxWidth(rect.W).
		MaxHeight(rect.H).
		Render(s)
}
