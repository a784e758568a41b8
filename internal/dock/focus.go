package dock

// Focus tracking: one panel at a time holds focus, chosen from the visible
// (active-tab) panels of the tree in depth-first order. Rotation wraps.

// focusOrder returns the rotation order: each Tabs node's active panel,
// depth-first. Hidden tabs are skipped; they gain focus when selected.
func (m *Manager) focusOrder() []PanelID {
	var order []PanelID
	m.tree.Walk(func(n *Node) {
		if id := n.ActivePanel(); id != "" {
			order = append(order, id)
		}
	})
	return order
}

// FocusedPanel returns the panel currently holding focus, or "".
func (m *Manager) FocusedPanel() PanelID {
	return m.focused
}

// FocusNext advances focus to the next visible panel in depth-first order
// and returns it. With nothing visible, focus clears.
func (m *Manager) FocusNext() PanelID {
	return m.rotateFocus(1)
}

// FocusPrev moves focus to the previous visible panel.
func (m *Manager) FocusPrev() PanelID {
	return m.rotateFocus(-1)
}

func (m *Manager) rotateFocus(step int) PanelID {
	order := m.focusOrder()
	if len(order) == 0 {
		m.setFocus("")
		return ""
	}
	idx := -1
	for i, id := range order {
		if id == m.focused {
			idx = i
			break
		}
	}
	var next int
	if idx < 0 {
		// Focus is cleared or on a hidden panel; start rotation at the
		// nearest end instead of offsetting from a phantom position.
		next = 0
		if step < 0 {
			next = len(order) - 1
		}
	} else {
		next = (idx + step + len(order)) % len(order)
	}
	m.setFocus(order[next])
	return m.focused
}

// setFocus moves focus, notifying both panels via OnActiveChanged.
func (m *Manager) setFocus(id PanelID) {
	if id == m.focused {
		return
	}
	if prev, ok := m.reg.get(m.focused); ok {
		prev.OnActiveChanged(false)
	}
	m.focused = id
	if next, ok := m.reg.get(id); ok {
		next.OnActiveChanged(true)
	}
}

// ensureFocus repairs focus after tree mutations: if the focused panel is no
// longer visible, focus falls to the first visible panel.
func (m *Manager) ensureFocus() {
	order := m.focusOrder()
	for _, id := range order {
		if id == m.focused {
			return
		}
	}
	if len(order) > 0 {
		m.setFocus(order[0])
		return
	}
	m.setFocus("")
}
