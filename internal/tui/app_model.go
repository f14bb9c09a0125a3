package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/listview"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/service"
	"github.com/MKhiriev/go-grocery-list/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeLocation
	modeAdd
	modeRecipe
	modeBuildInfo
)

// Model is the whole terminal client. The item slice is the local copy of
// the server list; it only changes after the server confirmed a mutation.
type Model struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	buildInfo     models.AppBuildInfo
	serverVersion string

	mode mode

	items  []models.GroceryItem
	filter listview.Filter
	view   listview.View
	cursor int

	loading    bool
	requests   int
	suggesting bool
	expanding  bool
	importing  bool

	status string
	errMsg string

	search   textinput.Model
	location textinput.Model
	form     addForm
	recipe   textarea.Model
	spinner  spinner.Model

	copyToClipboard func(string) error
}

// NewModel builds the client model. Init loads the list.
func NewModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) Model {
	search := textinput.New()
	search.Placeholder = "search items"
	search.Prompt = "/ "
	search.Width = 30

	location := textinput.New()
	location.Placeholder = "market, e.g. Trader Joe's"
	location.Prompt = "@ "
	location.Width = 30

	recipe := textarea.New()
	recipe.Placeholder = "Paste a recipe or a list of ingredients"
	recipe.SetWidth(60)
	recipe.SetHeight(8)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := Model{
		ctx:             ctx,
		services:        services,
		logger:          log,
		buildInfo:       buildInfo,
		filter:          listview.Filter{Category: models.CategoryAll},
		loading:         true,
		search:          search,
		location:        location,
		form:            newAddForm(),
		recipe:          recipe,
		spinner:         s,
		copyToClipboard: clipboard.WriteAll,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadItems())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.fail("load list", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.refresh()
		return m, nil

	case itemCreatedMsg:
		m.requests--
		m.form.saving = false
		if msg.err != nil {
			m.fail("add item", msg.err)
			return m, nil
		}
		m.items = listview.Prepend(m.items, msg.item)
		m.refresh()
		m.form.reset()
		m.mode = modeList
		m.setStatus(fmt.Sprintf("Added %s", msg.item.Name))
		return m, nil

	case itemUpdatedMsg:
		m.requests--
		if msg.err != nil {
			m.fail("update item", msg.err)
			return m, nil
		}
		m.items = listview.ReplaceByID(m.items, msg.item)
		m.refresh()
		m.errMsg = ""
		return m, nil

	case itemDeletedMsg:
		m.requests--
		if msg.err != nil {
			m.fail("delete item", msg.err)
			return m, nil
		}
		m.items = listview.RemoveByID(m.items, msg.id)
		m.refresh()
		m.setStatus("Item deleted")
		return m, nil

	case completedClearedMsg:
		m.requests--
		if msg.err != nil {
			m.fail("clear completed", msg.err)
			return m, nil
		}
		m.items = listview.RemoveCompleted(m.items)
		m.refresh()
		m.setStatus("Completed items cleared")
		return m, nil

	case suggestionMsg:
		m.suggesting = false
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("suggestion skipped")
			return m, nil
		}
		if msg.ok && strings.TrimSpace(m.form.draft.Name) == msg.name {
			m.form.draft.Apply(msg.suggestion)
		}
		return m, nil

	case expandedMsg:
		m.expanding = false
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("recipe expansion skipped")
			return m, nil
		}
		if len(msg.drafts) == 0 {
			m.setStatus("No ingredients found")
			return m, nil
		}
		m.recipe.Reset()
		m.recipe.Blur()
		m.mode = modeList
		m.importing = true
		m.setStatus(fmt.Sprintf("Adding %d ingredients...", len(msg.drafts)))
		return m, m.cmdImport(msg.drafts)

	case importedItemMsg:
		m.items = listview.Prepend(m.items, msg.item)
		m.refresh()
		return m, waitForImport(msg.stream)

	case importDoneMsg:
		m.importing = false
		if msg.err != nil {
			m.fail(fmt.Sprintf("finish import, %d added", msg.created), msg.err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Added %d ingredients", msg.created))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.fail("copy list", msg.err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Copied %d items", msg.count))
		return m, nil

	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("server version unavailable")
			m.serverVersion = ""
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(keyMsg)
	case modeLocation:
		return m.updateLocation(keyMsg)
	case modeAdd:
		return m.updateAdd(keyMsg)
	case modeRecipe:
		return m.updateRecipe(keyMsg)
	case modeBuildInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.mode = modeList
		}
		return m, nil
	default:
		return m.updateList(keyMsg)
	}
}

// updateFocused forwards non-key messages (cursor blink) to the active input.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	case modeLocation:
		m.location, cmd = m.location.Update(msg)
	case modeAdd:
		cmd = m.form.update(msg)
	case modeRecipe:
		m.recipe, cmd = m.recipe.Update(msg)
	}
	return m, cmd
}

func (m Model) busy() bool {
	return m.loading || m.requests > 0 || m.suggesting || m.expanding || m.importing || m.form.saving
}

// startRequest marks a mutation as outstanding and keeps the spinner going.
func (m *Model) startRequest(cmd tea.Cmd) tea.Cmd {
	wasBusy := m.busy()
	m.requests++
	m.errMsg = ""
	return m.withSpinner(wasBusy, cmd)
}

func (m *Model) withSpinner(wasBusy bool, cmd tea.Cmd) tea.Cmd {
	if wasBusy {
		return cmd
	}
	return tea.Batch(m.spinner.Tick, cmd)
}

// refresh recomputes the view and keeps the cursor on a visible row.
func (m *Model) refresh() {
	m.view = listview.Build(m.items, m.filter)
	if m.cursor >= m.view.VisibleCount {
		m.cursor = m.view.VisibleCount - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) current() (models.GroceryItem, bool) {
	rows := m.view.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return models.GroceryItem{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.errMsg = ""
}

// fail reports err in the status line and the log. The list is untouched.
func (m *Model) fail(action string, err error) {
	m.logger.Err(err).Str("action", action).Msg("request failed")
	m.status = ""
	m.errMsg = fmt.Sprintf("Could not %s: %s", action, describeError(err))
	if errors.Is(err, context.Canceled) {
		m.errMsg = ""
	}
}
