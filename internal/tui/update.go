package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Disabled):
		m.disabled = !m.disabled
	case key.Matches(msg, m.keys.Bold):
		m.bold = !m.bold
	case key.Matches(msg, m.keys.Underline):
		m.underline = !m.underline
	case key.Matches(msg, m.keys.Header):
		m.header = !m.header
		m.stepSize(0)
	case key.Matches(msg, m.keys.NextSize):
		m.stepSize(1)
	case key.Matches(msg, m.keys.PrevSize):
		m.stepSize(-1)
	case key.Matches(msg, m.keys.Purge):
		m.resolver.Cache().Purge()
	}
	return m, nil
}
