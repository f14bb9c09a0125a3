package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// updateRecipe handles the import modal: the text is expanded into drafts
// by the assistant, then every draft is created in order.
func (m Model) updateRecipe(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.recipe.Blur()
		m.mode = modeList
		return m, nil

	case key.Matches(msg, keys.submit):
		text := strings.TrimSpace(m.recipe.Value())
		if text == "" || m.expanding || m.importing {
			return m, nil
		}
		wasBusy := m.busy()
		m.expanding = true
		cmd := m.withSpinner(wasBusy, m.cmdExpand(text))
		return m, cmd
	}

	if m.expanding {
		return m, nil
	}

	var cmd tea.Cmd
	m.recipe, cmd = m.recipe.Update(msg)
	return m, cmd
}

func (m Model) viewRecipe() string {
	var b strings.Builder
	b.WriteString(m.recipe.View())
	b.WriteString("\n")
	if m.expanding {
		b.WriteString("\n" + m.spinner.View() + " Reading ingredients...\n")
	}
	return overlayBoxStyle.Render(b.String())
}

func recipeHotKeys(importing bool) string {
	submit := "ctrl+s: add ingredients"
	if importing {
		submit = "ctrl+s: import running..."
	}
	return strings.Join([]string{submit, "esc: back"}, " │ ")
}
