package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const minDividerWidth = 40

// renderPage frames body between a title and the key help. The divider
// follows the widest body line.
func renderPage(title, body, hotKeys string) string {
	body = strings.TrimRight(body, "\n")
	if strings.TrimSpace(body) == "" {
		body = helpStyle.Render("nothing to show")
	}
	divider := strings.Repeat("─", max(minDividerWidth, lipgloss.Width(body)))

	help := "ctrl+c: quit"
	if hotKeys != "" {
		help = hotKeys + "\n" + help
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		body,
		divider,
		helpStyle.Render(help),
	))
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
