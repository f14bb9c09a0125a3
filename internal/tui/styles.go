package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	groupStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	completedStyle  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	highStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	lowStyle        = lipgloss.NewStyle().Faint(true)
	focusedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
