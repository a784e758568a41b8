package panels

import (
	"github.com/charmbracelet/lipgloss"

	"dockspace/internal/dock"
	"dockspace/internal/geom"
	"dockspace/internal/jsonutil"
)

var (
	inspectorHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	inspectorName   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	inspectorValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	inspectorEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Property is one named value shown by the inspector. Values are the decoded
// JSON shapes entities carry, formatted via jsonutil.ToString.
type Property struct {
	Name  string
	Value any
}

// Inspector shows the properties of the currently selected entity. It is the
// one panel the workspace keeps non-closable.
type Inspector struct {
	id     dock.PanelID
	object string
	props  []Property
}

// NewInspector creates an inspector with no selection.
func NewInspector(id dock.PanelID) *Inspector {
	return &Inspector{id: id}
}

// SetObject replaces the inspected object and its properties.
func (p *Inspector) SetObject(name string, props []Property) {
	p.object = name
	p.props = props
}

func (p *Inspector) ID() dock.PanelID { return p.id }
func (p *Inspector) Title() string    { return "Inspector" }

func (p *Inspector) Render(bounds geom.Rect) string {
	if p.object == "" {
		return inspectorEmpty.Render("nothing selected")
	}
	rows := []string{inspectorHeader.Render(p.object), ""}
	for _, prop := range p.props {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			inspectorName.Render(prop.Name),
			inspectorValue.Render(jsonutil.ToString(prop.Value)),
		)
		rows = append(rows, row)
	}
	if len(rows) > bounds.H && bounds.H > 0 {
		rows = rows[:bounds.H]
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p *Inspector) HandleEvent(dock.Event) bool { return false }

func (p *Inspector) MinSize() geom.Size       { return geom.Size{W: 22, H: 6} }
func (p *Inspector) PreferredSize() geom.Size { return geom.Size{W: 34, H: 20} }
func (p *Inspector) CanClose() bool           { return false }
func (p *Inspector) OnDockChanged(bool)       {}
func (p *Inspector) OnActiveChanged(bool)     {}

var _ dock.Panel = (*Inspector)(nil)
