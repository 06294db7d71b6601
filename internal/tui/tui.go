// Package tui is the interactive console: one Bubble Tea program whose
// views mirror the pages of the management UI (login, dashboard, teams,
// projects, project detail with task filters, users).
package tui

import (
	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(sess *session.Store, client *api.Client) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newConsoleModel(sess, client)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
