package wm

import (
	"github.com/blazeneuro/blazewm/internal/hotkeys"
)

// Dispatch runs the action bound to a global hotkey.
func (m *Manager) Dispatch(action hotkeys.Action) {
	switch action {
	case hotkeys.ActionClose:
		m.CloseFocused()
	case hotkeys.ActionCycle:
		m.Cycle()
	case hotkeys.ActionLauncher:
		m.spawn(m.policy.Launcher)
	case hotkeys.ActionTerminal:
		m.spawn(m.policy.Terminal)
	}
}

func (m *Manager) spawn(program string) {
	if program == "" || m.spawner == nil {
		return
	}
	if err := m.spawner.Spawn(program); err != nil {
		m.logger.Warn("failed to start helper", "program", program, "error", err)
		return
	}
	m.logger.Info("started helper", "program", program)
}
