package wm

import (
	"github.com/blazeneuro/blazewm/internal/platform"
)

// Focus gives input focus to a managed window and raises it. The active
// window property is only rewritten when focus actually changes.
func (m *Manager) Focus(id platform.WindowID) {
	if !m.clients.Contains(id) {
		return
	}
	m.check("focus", id, m.backend.Focus(id))
	m.check("raise", id, m.backend.Raise(id))

	if m.focused == id {
		return
	}
	m.focused = id
	m.check("set active window", id, m.backend.SetActiveWindow(id))
}

// Activate focuses a window the user picked directly and moves it to the back
// of the cycle order.
func (m *Manager) Activate(id platform.WindowID) {
	if !m.clients.Contains(id) {
		return
	}
	m.check("publish client list", id, m.clients.MoveToBack(id))
	m.Focus(id)
}

// Cycle rotates the registry one step and focuses the new front client.
// With fewer than two clients there is nothing to cycle to.
func (m *Manager) Cycle() {
	if m.clients.Len() < 2 {
		return
	}
	if err := m.clients.RotateFrontToBack(); err != nil {
		m.check("publish client list", 0, err)
	}
	m.Focus(m.clients.First().ID)
}

// CloseFocused asks the focused window to close, or kills its client when
// it does not take part in WM_DELETE_WINDOW.
func (m *Manager) CloseFocused() {
	id := m.focused
	if id == 0 {
		return
	}
	if m.backend.SupportsDelete(id) {
		m.logger.Debug("closing window", "window", id)
		m.check("close", id, m.backend.Close(id))
		return
	}
	m.logger.Debug("killing client", "window", id)
	m.check("kill", id, m.backend.Kill(id))
}

// refocus picks a new focus after the focused client went away.
func (m *Manager) refocus() {
	if last := m.clients.Last(); last != nil {
		m.Focus(last.ID)
		return
	}
	m.check("set active window", 0, m.backend.SetActiveWindow(0))
}
