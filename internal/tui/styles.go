package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#8758FF")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1).MarginBottom(1)
	controlStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle    = controlStyle.Bold(true).Foreground(accent).Underline(true)
	rowStyle       = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	emptyStyle     = lipgloss.NewStyle().Faint(true).Italic(true).PaddingLeft(2)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	inputStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
)
