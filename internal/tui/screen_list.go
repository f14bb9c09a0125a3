package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/listview"
	"github.com/MKhiriev/go-grocery-list/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, keys.quit):
		cmd = tea.Quit

	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.down):
		if m.cursor < m.view.VisibleCount-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.toggle):
		if item, ok := m.current(); ok {
			cmd = m.startRequest(m.cmdToggle(item))
		}

	case key.Matches(msg, keys.delete):
		if item, ok := m.current(); ok {
			cmd = m.startRequest(m.cmdDelete(item.ID))
		}

	case key.Matches(msg, keys.clearCompleted):
		if m.view.HasCompleted() {
			cmd = m.startRequest(m.cmdClearCompleted())
		}

	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		cmd = m.search.Focus()

	case key.Matches(msg, keys.tab):
		m.filter.Category = listview.NextCategory(m.filter.Category, 1)
		m.refresh()

	case key.Matches(msg, keys.backtab):
		m.filter.Category = listview.NextCategory(m.filter.Category, -1)
		m.refresh()

	case key.Matches(msg, keys.nearMarket):
		m.filter.NearMarket = !m.filter.NearMarket
		m.refresh()

	case key.Matches(msg, keys.location):
		m.mode = modeLocation
		m.location.SetValue(m.filter.Location)
		cmd = m.location.Focus()

	case key.Matches(msg, keys.reload):
		if !m.loading {
			wasBusy := m.busy()
			m.loading = true
			cmd = m.withSpinner(wasBusy, m.cmdLoadItems())
		}

	case key.Matches(msg, keys.copy):
		if m.view.VisibleCount == 0 {
			m.setStatus("Nothing to copy")
		} else {
			cmd = m.cmdCopy(m.view.PlainText(), m.view.VisibleCount)
		}

	case key.Matches(msg, keys.add):
		m.mode = modeAdd
		cmd = m.form.focus(fieldName)

	case key.Matches(msg, keys.recipe):
		m.mode = modeRecipe
		cmd = m.recipe.Focus()

	case key.Matches(msg, keys.buildInfo):
		m.mode = modeBuildInfo
		cmd = m.cmdServerVersion()
	}

	return m, cmd
}

// updateSearch edits the search string live. enter keeps it, esc clears it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.esc):
		m.search.Reset()
		m.search.Blur()
		m.filter.Search = ""
		m.refresh()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.Search = m.search.Value()
	m.refresh()
	return m, cmd
}

func (m Model) updateLocation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.filter.Location = strings.TrimSpace(m.location.Value())
		m.location.Blur()
		m.refresh()
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.esc):
		m.location.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.location, cmd = m.location.Update(msg)
	return m, cmd
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.viewFilterBar())
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case m.view.TotalCount == 0:
		b.WriteString(helpStyle.Render("Your list is empty. Press a to add an item.") + "\n")
	case m.view.VisibleCount == 0:
		b.WriteString(helpStyle.Render("No items match the current filters.") + "\n")
	default:
		row := 0
		for _, g := range m.view.Groups {
			b.WriteString(groupStyle.Render(string(g.Category)))
			b.WriteString("\n")
			for _, item := range g.Items {
				b.WriteString(renderItem(item, row == m.cursor))
				b.WriteString("\n")
				row++
			}
			b.WriteString("\n")
		}
	}

	if item, ok := m.current(); ok && !item.CreatedAt.IsZero() {
		b.WriteString(helpStyle.Render("added " + humanize.Time(item.CreatedAt)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewFilterBar() string {
	parts := []string{
		fmt.Sprintf("%d/%d items", m.view.VisibleCount, m.view.TotalCount),
		"category: " + string(m.filter.Category),
	}
	if m.filter.Search != "" || m.mode == modeSearch {
		parts = append(parts, m.search.View())
	}
	if m.mode == modeLocation {
		parts = append(parts, m.location.View())
	} else if m.filter.NearMarket {
		parts = append(parts, "near: "+valueOrDash(m.filter.Location))
	}
	return strings.Join(parts, "  │  ")
}

func renderItem(item models.GroceryItem, selected bool) string {
	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("> ")
	}

	check := "[ ]"
	if item.Completed {
		check = "[x]"
	}

	name := item.Name
	if item.Quantity != "" {
		name += " (" + item.Quantity + ")"
	}
	if item.Completed {
		name = completedStyle.Render(name)
	}

	line := fmt.Sprintf("%s%s %s %s", cursor, check, renderPriority(item.Priority), name)
	if item.HasLocation() {
		line += helpStyle.Render(" @ " + item.Location)
	}
	return line
}

func renderPriority(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return highStyle.Render("!!")
	case models.PriorityLow:
		return lowStyle.Render(" ·")
	default:
		return " !"
	}
}

func (m Model) listHotKeys() string {
	hints := []string{"a: add", "i: recipe", "space: done", "d: delete"}
	if m.view.HasCompleted() {
		hints = append(hints, "C: clear completed")
	}
	hints = append(hints, "/: search", "tab: category", "m: near market", "L: location", "r: reload", "y: copy", "v: about", "q: quit")
	return strings.Join(hints, " │ ")
}
