// Package textutil provides unicode-aware text helpers for terminal
// rendering. Widths are terminal columns, not runes or bytes.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended when truncation shortens a string.
const Ellipsis = "…"

// Width returns the number of terminal columns a plain string occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// StyledWidth returns the column width of a string that may carry ANSI
// escape codes.
func StyledWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, appending an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, avail, "") + Ellipsis
}

// Pad extends s with spaces on the right to exactly width columns,
// truncating first if it is too long.
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := Width(s); w > width {
		s = Truncate(s, width)
	}
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
