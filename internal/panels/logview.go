package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/dock"
	"dockspace/internal/geom"
)

var logLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

// Log is a scrollback panel for application log lines. The docking engine's
// Logf is typically pointed here so recoverable conditions stay visible
// without corrupting the terminal.
type Log struct {
	id     dock.PanelID
	vp     viewport.Model
	lines  []string
	max    int
	follow bool
}

// NewLog creates a log panel keeping at most max lines.
func NewLog(id dock.PanelID, max int) *Log {
	if max <= 0 {
		max = 500
	}
	return &Log{id: id, vp: viewport.New(0, 0), max: max, follow: true}
}

// Append adds one line to the scrollback, trimming the oldest past the cap.
func (l *Log) Append(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
	l.vp.SetContent(logLineStyle.Render(strings.Join(l.lines, "\n")))
	if l.follow {
		l.vp.GotoBottom()
	}
}

// Logf is a drop-in for dock.Config.Logf.
func (l *Log) Logf(format string, args ...any) {
	l.Append(fmt.Sprintf(format, args...))
}

func (l *Log) ID() dock.PanelID { return l.id }
func (l *Log) Title() string    { return "Log" }

func (l *Log) Render(bounds geom.Rect) string {
	l.vp.Width = bounds.W
	l.vp.Height = bounds.H
	return l.vp.View()
}

func (l *Log) HandleEvent(ev dock.Event) bool {
	switch e := ev.(type) {
	case dock.KeyEvent:
		switch e.Key {
		case "up", "k":
			l.scrollBy(-1)
		case "down", "j":
			l.scrollBy(1)
		case "pgup":
			l.scrollBy(-l.vp.Height)
		case "pgdown":
			l.scrollBy(l.vp.Height)
		case "G":
			l.vp.GotoBottom()
			l.follow = true
		default:
			return false
		}
		return true
	case dock.PointerEvent:
		switch e.Button {
		case dock.ButtonWheelUp:
			l.scrollBy(-3)
			return true
		case dock.ButtonWheelDown:
			l.scrollBy(3)
			return true
		}
	}
	return false
}

func (l *Log) scrollBy(n int) {
	l.vp.SetYOffset(l.vp.YOffset + n)
	l.follow = l.vp.AtBottom()
}

func (l *Log) MinSize() geom.Size       { return geom.Size{W: 16, H: 4} }
func (l *Log) PreferredSize() geom.Size { return geom.Size{W: 60, H: 10} }
func (l *Log) CanClose() bool           { return true }

func (l *Log) OnDockChanged(docked bool) {
	if docked {
		l.vp.GotoBottom()
	}
}

func (l *Log) OnActiveChanged(bool) {}

var _ dock.Panel = (*Log)(nil)
