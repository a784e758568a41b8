package panels

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/creack/pty"

	"dockspace/internal/dock"
	"dockspace/internal/geom"
)

// ansiSeq matches CSI and OSC escape sequences so raw shell output can be
// flattened into plain scrollback lines.
var ansiSeq = regexp.MustCompile(`\x1b(\[[0-9;?]*[a-zA-Z]|\][^\x07]*\x07)`)

const consoleScrollback = 2000

// Console runs a shell on a pty and shows its output as scrollback.
// The host pumps ReadOutput from a goroutine and feeds the bytes back in via
// Append, so the panel itself stays single-threaded with the UI loop.
type Console struct {
	id      dock.PanelID
	shell   string
	cmd     *exec.Cmd
	ptmx    *os.File
	vp      viewport.Model
	lines   []string
	partial string
	size    geom.Size
	active  bool
}

// NewConsole creates a console panel. The shell is not started until Start.
func NewConsole(id dock.PanelID, shell string) *Console {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &Console{id: id, shell: shell, vp: viewport.New(0, 0)}
}

// Start launches the shell on a new pty.
func (c *Console) Start() error {
	if c.ptmx != nil {
		return fmt.Errorf("console %s: already started", c.id)
	}
	cmd := exec.Command(c.shell)
	cmd.Env = append(os.Environ(), "TERM=dumb")

	ws := &pty.Winsize{Rows: 24, Cols: 80}
	if c.size.W > 0 && c.size.H > 0 {
		ws = &pty.Winsize{Rows: uint16(c.size.H), Cols: uint16(c.size.W)}
	}
	ptmx, err := pty.StartWithSize(cmd, ws)
	if err != nil {
		return fmt.Errorf("console %s: start %s: %w", c.id, c.shell, err)
	}
	c.cmd = cmd
	c.ptmx = ptmx
	return nil
}

// ReadOutput blocks until the shell produces output. Call from a dedicated
// goroutine; it returns an error once the pty closes.
func (c *Console) ReadOutput() ([]byte, error) {
	if c.ptmx == nil {
		return nil, fmt.Errorf("console %s: not started", c.id)
	}
	buf := make([]byte, 4096)
	n, err := c.ptmx.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Append folds shell output bytes into the scrollback.
func (c *Console) Append(data []byte) {
	text := ansiSeq.ReplaceAllString(string(data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = c.partial + text
	parts := strings.Split(text, "\n")
	c.partial = parts[len(parts)-1]
	c.lines = append(c.lines, parts[:len(parts)-1]...)
	if len(c.lines) > consoleScrollback {
		c.lines = c.lines[len(c.lines)-consoleScrollback:]
	}

	content := strings.Join(c.lines, "\n")
	if c.partial != "" {
		content += "\n" + c.partial
	}
	c.vp.SetContent(content)
	c.vp.GotoBottom()
}

// Close terminates the shell and releases the pty.
func (c *Console) Close() error {
	if c.ptmx == nil {
		return nil
	}
	err := c.ptmx.Close()
	c.ptmx = nil
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Process.Kill()
		c.cmd.Wait()
	}
	c.cmd = nil
	return err
}

func (c *Console) ID() dock.PanelID { return c.id }
func (c *Console) Title() string    { return "Console" }

func (c *Console) Render(bounds geom.Rect) string {
	if bounds.W != c.size.W || bounds.H != c.size.H {
		c.size = geom.Size{W: bounds.W, H: bounds.H}
		if c.ptmx != nil {
			pty.Setsize(c.ptmx, &pty.Winsize{Rows: uint16(bounds.H), Cols: uint16(bounds.W)})
		}
	}
	c.vp.Width = bounds.W
	c.vp.Height = bounds.H
	return c.vp.View()
}

func (c *Console) HandleEvent(ev dock.Event) bool {
	switch e := ev.(type) {
	case dock.KeyEvent:
		if c.ptmx == nil {
			return false
		}
		b := keyBytes(e.Key)
		if b == nil {
			return false
		}
		c.ptmx.Write(b)
		return true
	case dock.PointerEvent:
		switch e.Button {
		case dock.ButtonWheelUp:
			c.vp.SetYOffset(c.vp.YOffset - 3)
			return true
		case dock.ButtonWheelDown:
			c.vp.SetYOffset(c.vp.YOffset + 3)
			return true
		}
	}
	return false
}

// keyBytes translates a key name into the bytes the pty expects, or nil for
// keys the console does not consume.
func keyBytes(key string) []byte {
	switch key {
	case "enter":
		return []byte{'\r'}
	case "backspace":
		return []byte{0x7f}
	case "tab":
		return []byte{'\t'}
	case " ", "space":
		return []byte{' '}
	case "ctrl+c":
		return []byte{0x03}
	case "ctrl+d":
		return []byte{0x04}
	case "ctrl+l":
		return []byte{0x0c}
	case "up":
		return []byte("\x1b[A")
	case "down":
		return []byte("\x1b[B")
	case "right":
		return []byte("\x1b[C")
	case "left":
		return []byte("\x1b[D")
	}
	if len([]rune(key)) == 1 {
		return []byte(key)
	}
	return nil
}

func (c *Console) MinSize() geom.Size       { return geom.Size{W: 20, H: 5} }
func (c *Console) PreferredSize() geom.Size { return geom.Size{W: 80, H: 12} }
func (c *Console) CanClose() bool           { return true }

func (c *Console) OnDockChanged(docked bool) {
	if !docked {
		c.Close()
	}
}

func (c *Console) OnActiveChanged(active bool) { c.active = active }

var _ dock.Panel = (*Console)(nil)
