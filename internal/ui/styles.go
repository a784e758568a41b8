package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the shell.
const (
	colorAccent    = "86"  // cyan/green, titles and highlights
	colorHighlight = "205" // magenta, selected items
	colorMuted     = "241" // gray, dimmed text and hints
	colorText      = "252" // light gray, normal text
)

// Styles contains the shared style definitions of the shell chrome.
var Styles = struct {
	StatusBar   lipgloss.Style // bottom row background
	StatusFocus lipgloss.Style // focused-panel segment
	StatusInfo  lipgloss.Style // transient messages
	StatusError lipgloss.Style // failures surfaced to the bar
}{
	StatusBar: lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color(colorText)),
	StatusFocus: lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color(colorAccent)).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color(colorMuted)),
	StatusError: lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("196")),
}
