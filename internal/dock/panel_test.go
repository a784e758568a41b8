package dock

import "dockspace/internal/geom"

// stubPanel is a minimal Panel for tests, recording lifecycle notifications.
type stubPanel struct {
	id       PanelID
	title    string
	min      geom.Size
	pref     geom.Size
	closable bool

	dockEvents   []bool
	activeEvents []bool
	events       []Event
	consume      bool
}

func newStub(id PanelID) *stubPanel {
	return &stubPanel{
		id:       id,
		title:    string(id),
		min:      geom.Size{W: 1, H: 1},
		closable: true,
		consume:  true,
	}
}

func (s *stubPanel) ID() PanelID                 { return s.id }
func (s *stubPanel) Title() string               { return s.title }
func (s *stubPanel) Render(bounds geom.Rect) string { return "" }
func (s *stubPanel) HandleEvent(ev Event) bool {
	s.events = append(s.events, ev)
	return s.consume
}
func (s *stubPanel) MinSize() geom.Size       { return s.min }
func (s *stubPanel) PreferredSize() geom.Size { return s.pref }
func (s *stubPanel) CanClose() bool           { return s.closable }
func (s *stubPanel) OnDockChanged(docked bool) {
	s.dockEvents = append(s.dockEvents, docked)
}
func (s *stubPanel) OnActiveChanged(active bool) {
	s.activeEvents = append(s.activeEvents, active)
}

var _ Panel = (*stubPanel)(nil)

// quietConfig silences log output during tests.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Logf = func(string, ...any) {}
	return cfg
}
