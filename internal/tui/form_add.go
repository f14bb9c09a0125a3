package tui

import (
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/listview"
	"github.com/MKhiriev/go-grocery-list/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldName formField = iota
	fieldQuantity
	fieldCategory
	fieldPriority
	fieldLocation
	formFieldCount
)

// addForm edits a listview.Draft. Text fields are bubbles inputs; category
// and priority are cycled with left/right.
type addForm struct {
	draft listview.Draft

	name     textinput.Model
	quantity textinput.Model
	location textinput.Model

	focused formField
	saving  bool
	errMsg  string
}

func newAddForm() addForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.Width = 40
	name.CharLimit = 200

	quantity := textinput.New()
	quantity.Placeholder = "Quantity (optional)"
	quantity.Width = 40
	quantity.CharLimit = 100

	location := textinput.New()
	location.Placeholder = "Market (optional)"
	location.Width = 40
	location.CharLimit = 100

	return addForm{
		draft:    listview.NewDraft(),
		name:     name,
		quantity: quantity,
		location: location,
	}
}

// reset empties the form after a successful add.
func (f *addForm) reset() {
	f.draft.Reset()
	f.name.Reset()
	f.quantity.Reset()
	f.location.Reset()
	f.errMsg = ""
	f.saving = false
	f.blurAll()
	f.focused = fieldName
}

func (f *addForm) blurAll() {
	f.name.Blur()
	f.quantity.Blur()
	f.location.Blur()
}

func (f *addForm) focus(field formField) tea.Cmd {
	f.blurAll()
	f.focused = field
	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldQuantity:
		return f.quantity.Focus()
	case fieldLocation:
		return f.location.Focus()
	}
	return nil
}

func (f *addForm) input() *textinput.Model {
	switch f.focused {
	case fieldName:
		return &f.name
	case fieldQuantity:
		return &f.quantity
	case fieldLocation:
		return &f.location
	}
	return nil
}

// update feeds msg to the focused text input and syncs the draft.
func (f *addForm) update(msg tea.Msg) tea.Cmd {
	in := f.input()
	if in == nil {
		return nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)

	f.draft.Name = f.name.Value()
	f.draft.Quantity = f.quantity.Value()
	f.draft.Location = f.location.Value()
	return cmd
}

func (f *addForm) cycle(step int) {
	switch f.focused {
	case fieldCategory:
		f.draft.Category = cycleValue(models.Categories, f.draft.Category, step)
	case fieldPriority:
		f.draft.Priority = cycleValue(models.Priorities, f.draft.Priority, step)
	}
}

func cycleValue[T comparable](values []T, current T, step int) T {
	i := 0
	for j, v := range values {
		if v == current {
			i = j
			break
		}
	}
	i = (i + step + len(values)) % len(values)
	return values[i]
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, keys.esc):
		m.form.blurAll()
		m.form.errMsg = ""
		m.mode = modeList

	case key.Matches(msg, keys.tab):
		cmd = m.form.focus((m.form.focused + 1) % formFieldCount)

	case key.Matches(msg, keys.backtab):
		cmd = m.form.focus((m.form.focused - 1 + formFieldCount) % formFieldCount)

	case m.form.input() == nil && key.Matches(msg, keys.left):
		m.form.cycle(-1)

	case m.form.input() == nil && key.Matches(msg, keys.right):
		m.form.cycle(1)

	case key.Matches(msg, keys.suggest):
		name := strings.TrimSpace(m.form.draft.Name)
		if name == "" || m.suggesting {
			return m, nil
		}
		wasBusy := m.busy()
		m.suggesting = true
		cmd = m.withSpinner(wasBusy, m.cmdSuggest(name))

	case key.Matches(msg, keys.enter):
		if m.form.saving {
			return m, nil
		}
		if !m.form.draft.Ready() {
			m.form.errMsg = "name is required"
			return m, nil
		}
		m.form.errMsg = ""
		wasBusy := m.busy()
		m.form.saving = true
		m.requests++
		m.errMsg = ""
		cmd = m.withSpinner(wasBusy, m.cmdCreate(m.form.draft.ToNewItem()))

	default:
		cmd = m.form.update(msg)
	}

	return m, cmd
}

func (m Model) viewAdd() string {
	var b strings.Builder
	f := m.form

	row := func(field formField, label, value string) {
		marker := "  "
		if f.focused == field {
			marker = focusedStyle.Render("> ")
		}
		b.WriteString(marker + label + value + "\n")
	}

	row(fieldName, "Name      ", f.name.View())
	row(fieldQuantity, "Quantity  ", f.quantity.View())

	category := "‹ " + string(f.draft.Category) + " ›"
	if m.suggesting {
		category += " " + m.spinner.View() + " asking assistant"
	}
	row(fieldCategory, "Category  ", category)
	row(fieldPriority, "Priority  ", "‹ "+string(f.draft.Priority)+" ›")
	row(fieldLocation, "Market    ", f.location.View())

	if f.saving {
		b.WriteString("\n" + m.spinner.View() + " Saving...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(f.errMsg) + "\n")
	}

	return b.String()
}

func (m Model) addHotKeys() string {
	suggest := "ctrl+g: auto-categorize"
	if m.suggesting {
		suggest = "ctrl+g: working..."
	}
	return strings.Join([]string{"enter: add", "tab: next field", "←/→: change", suggest, "esc: back"}, " │ ")
}
