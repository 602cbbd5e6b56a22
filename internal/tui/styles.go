package tui

import "github.com/charmbracelet/lipgloss"

// ------- styling (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	totalStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(10)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	focusedSectionStyle = sectionStyle.BorderForeground(lipgloss.Color("178"))
)

func section(inner string, focused bool) string {
	if focused {
		return focusedSectionStyle.Render(inner)
	}
	return sectionStyle.Render(inner)
}
