package ui

// ConsoleOutputMsg carries bytes read from the console's pty.
type ConsoleOutputMsg struct {
	Data []byte
}

// ConsoleClosedMsg signals that the console's pty read loop ended.
type ConsoleClosedMsg struct {
	Err error
}

// SaveLayoutMsg requests writing the current layout to disk (SPC w s).
type SaveLayoutMsg struct{}

// LoadLayoutMsg requests restoring the layout from disk (SPC w o).
type LoadLayoutMsg struct{}

// FocusNextMsg and FocusPrevMsg cycle keyboard focus across visible panels.
type FocusNextMsg struct{}
type FocusPrevMsg struct{}

// statusMsg updates the status bar's transient message segment.
type statusMsg struct {
	text  string
	isErr bool
}
