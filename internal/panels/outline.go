package panels

import (
	"github.com/charmbracelet/bubbles/list"

	"dockspace/internal/dock"
	"dockspace/internal/geom"
)

// Entity is one row in the scene outline.
type Entity struct {
	Name string
	Kind string
}

func (e Entity) Title() string       { return e.Name }
func (e Entity) Description() string { return e.Kind }
func (e Entity) FilterValue() string { return e.Name }

// Outline lists the scene's entities and reports selection changes so a
// sibling inspector can follow along.
type Outline struct {
	id       dock.PanelID
	list     list.Model
	onSelect func(Entity)
}

// NewOutline creates the outline panel. onSelect may be nil.
func NewOutline(id dock.PanelID, entities []Entity, onSelect func(Entity)) *Outline {
	items := make([]list.Item, len(entities))
	for i, e := range entities {
		items[i] = e
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Scene"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return &Outline{id: id, list: l, onSelect: onSelect}
}

// Selected returns the highlighted entity, if any.
func (o *Outline) Selected() (Entity, bool) {
	it := o.list.SelectedItem()
	if it == nil {
		return Entity{}, false
	}
	e, ok := it.(Entity)
	return e, ok
}

func (o *Outline) ID() dock.PanelID { return o.id }
func (o *Outline) Title() string    { return "Outline" }

func (o *Outline) Render(bounds geom.Rect) string {
	o.list.SetWidth(bounds.W)
	o.list.SetHeight(bounds.H)
	return o.list.View()
}

func (o *Outline) HandleEvent(ev dock.Event) bool {
	e, ok := ev.(dock.KeyEvent)
	if !ok {
		return false
	}
	switch e.Key {
	case "up", "k":
		o.list.CursorUp()
	case "down", "j":
		o.list.CursorDown()
	case "enter":
		if sel, ok := o.Selected(); ok && o.onSelect != nil {
			o.onSelect(sel)
		}
	default:
		return false
	}
	return true
}

func (o *Outline) MinSize() geom.Size       { return geom.Size{W: 18, H: 5} }
func (o *Outline) PreferredSize() geom.Size { return geom.Size{W: 28, H: 20} }
func (o *Outline) CanClose() bool           { return true }
func (o *Outline) OnDockChanged(bool)       {}
func (o *Outline) OnActiveChanged(bool)     {}

var _ dock.Panel = (*Outline)(nil)
