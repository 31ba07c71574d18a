package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	onStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	offStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	footerStyle  = lipgloss.NewStyle().MarginTop(1)
)

func flag(name string, on bool) string {
	if on {
		return onStyle.Render("● " + name)
	}
	return offStyle.Render("○ " + name)
}
