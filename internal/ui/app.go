package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/dock"
	"dockspace/internal/geom"
	"dockspace/internal/panels"
	"dockspace/internal/textutil"
)

// statusBarHeight is the rows reserved below the layout tree.
const statusBarHeight = 1

// Options configures the workspace shell.
type Options struct {
	// LayoutPath is where SPC w s / SPC w o persist the layout.
	LayoutPath string
	// Shell overrides $SHELL for the console panel.
	Shell string
	// Scene seeds the outline panel.
	Scene []panels.Entity
	// Properties maps entity names to the values the inspector shows.
	Properties map[string][]panels.Property
}

// WorkspaceModel is the root Bubble Tea model: a docking manager, its
// panels, and the keybind layer on top.
type WorkspaceModel struct {
	manager *dock.Manager
	keys    *KeyHandler

	console   *panels.Console
	logPanel  *panels.Log
	outline   *panels.Outline
	inspector *panels.Inspector

	layoutPath string
	width      int
	height     int
	status     string
	statusErr  bool
}

var _ tea.Model = (*WorkspaceModel)(nil)

// NewWorkspace builds the workspace with the default layout:
// outline on the left, console over log in the middle, inspector right.
// A saved layout at opts.LayoutPath, when present and loadable, wins.
func NewWorkspace(opts Options) (*WorkspaceModel, error) {
	logPanel := panels.NewLog("log", 500)
	cfg := dock.DefaultConfig()
	cfg.Logf = logPanel.Logf
	mgr := dock.NewManager(cfg)

	inspector := panels.NewInspector("inspector")
	outline := panels.NewOutline("outline", opts.Scene, func(e panels.Entity) {
		inspector.SetObject(e.Name, opts.Properties[e.Name])
	})
	console := panels.NewConsole("console", opts.Shell)

	m := &WorkspaceModel{
		manager:    mgr,
		console:    console,
		logPanel:   logPanel,
		outline:    outline,
		inspector:  inspector,
		layoutPath: opts.LayoutPath,
	}

	// Registration order matters only for the first panel, which is docked
	// automatically; the rest are placed explicitly below.
	for _, p := range []dock.Panel{outline, console, logPanel, inspector} {
		if err := mgr.RegisterPanel(p); err != nil {
			return nil, err
		}
	}
	outlineNode, _ := mgr.PanelNode("outline")
	if err := mgr.Dock("console", dock.ZoneTarget(outlineNode, dock.SideRight)); err != nil {
		return nil, err
	}
	consoleNode, _ := mgr.PanelNode("console")
	if err := mgr.Dock("log", dock.ZoneTarget(consoleNode, dock.SideBottom)); err != nil {
		return nil, err
	}
	if err := mgr.Dock("inspector", dock.ZoneTarget(mgr.RootNode(), dock.SideRight)); err != nil {
		return nil, err
	}

	if opts.LayoutPath != "" {
		if data, err := os.ReadFile(opts.LayoutPath); err == nil {
			if err := mgr.LoadLayout(data); err != nil {
				logPanel.Logf("ui: saved layout ignored: %v", err)
			}
		}
	}

	m.keys = NewKeyHandler(m.buildKeybinds())
	return m, nil
}

func (m *WorkspaceModel) buildKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("SPC w s", func() tea.Msg { return SaveLayoutMsg{} }, "Save layout")
	reg.Bind("SPC w o", func() tea.Msg { return LoadLayoutMsg{} }, "Open layout")
	reg.Bind("tab", func() tea.Msg { return FocusNextMsg{} }, "Next panel")
	reg.Bind("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "Previous panel")
	return reg
}

// Init starts the console shell and its output pump.
func (m *WorkspaceModel) Init() tea.Cmd {
	if err := m.console.Start(); err != nil {
		m.logPanel.Logf("ui: console unavailable: %v", err)
		return nil
	}
	return m.readConsole()
}

// readConsole blocks on the pty in a command goroutine and feeds output
// back into the update loop.
func (m *WorkspaceModel) readConsole() tea.Cmd {
	return func() tea.Msg {
		data, err := m.console.ReadOutput()
		if err != nil {
			return ConsoleClosedMsg{Err: err}
		}
		return ConsoleOutputMsg{Data: data}
	}
}

// Update implements tea.Model.
func (m *WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		// Leader sequences and global bindings win. While the console shell
		// holds focus it gets the raw keys instead; only ctrl+c and shift+tab
		// stay intercepted so quit and focus-cycle remain reachable.
		key := msg.String()
		if m.manager.FocusedPanel() == m.console.ID() && key != "ctrl+c" && key != "shift+tab" {
			m.manager.HandleKey(dock.KeyEvent{Key: key})
			return m, nil
		}
		if consumed, cmd := m.keys.Handle(msg); consumed {
			return m, cmd
		}
		m.manager.HandleKey(dock.KeyEvent{Key: key})
		return m, nil

	case tea.MouseMsg:
		m.manager.HandlePointer(mouseToPointer(msg))
		return m, nil

	case ConsoleOutputMsg:
		m.console.Append(msg.Data)
		return m, m.readConsole()

	case ConsoleClosedMsg:
		m.logPanel.Logf("ui: console closed: %v", msg.Err)
		return m, nil

	case FocusNextMsg:
		m.manager.FocusNext()
		return m, nil

	case FocusPrevMsg:
		m.manager.FocusPrev()
		return m, nil

	case SaveLayoutMsg:
		return m, m.saveLayout()

	case LoadLayoutMsg:
		return m, m.loadLayout()

	case statusMsg:
		m.status, m.statusErr = msg.text, msg.isErr
		return m, nil
	}
	return m, nil
}

func (m *WorkspaceModel) saveLayout() tea.Cmd {
	data, err := m.manager.SaveLayout()
	if err == nil {
		if dir := filepath.Dir(m.layoutPath); dir != "." {
			err = os.MkdirAll(dir, 0o755)
		}
	}
	if err == nil {
		err = os.WriteFile(m.layoutPath, data, 0o644)
	}
	return func() tea.Msg {
		if err != nil {
			return statusMsg{text: fmt.Sprintf("save failed: %v", err), isErr: true}
		}
		return statusMsg{text: "layout saved to " + m.layoutPath}
	}
}

func (m *WorkspaceModel) loadLayout() tea.Cmd {
	data, err := os.ReadFile(m.layoutPath)
	if err == nil {
		err = m.manager.LoadLayout(data)
	}
	return func() tea.Msg {
		if err != nil {
			return statusMsg{text: fmt.Sprintf("load failed: %v", err), isErr: true}
		}
		return statusMsg{text: "layout restored from " + m.layoutPath}
	}
}

// View implements tea.Model.
func (m *WorkspaceModel) View() string {
	if m.width <= 0 || m.height <= statusBarHeight {
		return ""
	}
	workspace := m.manager.Render(m.workspaceRect())
	return workspace + "\n" + m.statusBar()
}

// workspaceRect is the region handed to the layout tree: everything above
// the status bar.
func (m *WorkspaceModel) workspaceRect() geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: m.width, H: m.height - statusBarHeight}
}

func (m *WorkspaceModel) statusBar() string {
	if help := RenderKeybindHelp(m.keys); help != "" {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(help)
	}

	focus := "none"
	if id := m.manager.FocusedPanel(); id != "" {
		focus = string(id)
	}
	left := Styles.StatusFocus.Render(" "+focus+" ") +
		Styles.StatusInfo.Render(" tab: cycle  SPC: commands ")

	right := ""
	if m.status != "" {
		style := Styles.StatusInfo
		if m.statusErr {
			style = Styles.StatusError
		}
		right = style.Render(" " + m.status + " ")
	}

	gap := m.width - textutil.StyledWidth(left) - textutil.StyledWidth(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + Styles.StatusBar.Render(strings.Repeat(" ", gap)) + right
	return lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
}

// mouseToPointer converts a Bubble Tea mouse event into the engine's
// normalized pointer event.
func mouseToPointer(msg tea.MouseMsg) dock.PointerEvent {
	ev := dock.PointerEvent{
		Pos:   geom.Point{X: msg.X, Y: msg.Y},
		Shift: msg.Shift,
		Alt:   msg.Alt,
		Ctrl:  msg.Ctrl,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = dock.PointerPress
	case tea.MouseActionRelease:
		ev.Action = dock.PointerRelease
	default:
		ev.Action = dock.PointerMove
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = dock.ButtonLeft
	case tea.MouseButtonRight:
		ev.Button = dock.ButtonRight
	case tea.MouseButtonMiddle:
		ev.Button = dock.ButtonMiddle
	case tea.MouseButtonWheelUp:
		ev.Button = dock.ButtonWheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = dock.ButtonWheelDown
	}
	return ev
}
