package tui

import (
	"github.com/MKhiriev/go-grocery-list/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Every call to the server or the assistant runs as a tea.Cmd so the event
// loop keeps rendering while it is outstanding.

func (m Model) cmdLoadItems() tea.Cmd {
	ctx, items := m.ctx, m.services.ItemService
	return func() tea.Msg {
		list, err := items.List(ctx)
		return itemsLoadedMsg{items: list, err: err}
	}
}

func (m Model) cmdCreate(newItem models.NewItem) tea.Cmd {
	ctx, items := m.ctx, m.services.ItemService
	return func() tea.Msg {
		created, err := items.Add(ctx, newItem)
		return itemCreatedMsg{item: created, err: err}
	}
}

func (m Model) cmdToggle(item models.GroceryItem) tea.Cmd {
	ctx, items := m.ctx, m.services.ItemService
	return func() tea.Msg {
		updated, err := items.Toggle(ctx, item)
		return itemUpdatedMsg{item: updated, err: err}
	}
}

func (m Model) cmdDelete(id int64) tea.Cmd {
	ctx, items := m.ctx, m.services.ItemService
	return func() tea.Msg {
		return itemDeletedMsg{id: id, err: items.Delete(ctx, id)}
	}
}

func (m Model) cmdClearCompleted() tea.Cmd {
	ctx, items := m.ctx, m.services.ItemService
	return func() tea.Msg {
		return completedClearedMsg{err: items.ClearCompleted(ctx)}
	}
}

func (m Model) cmdSuggest(name string) tea.Cmd {
	ctx, assist := m.ctx, m.services.AssistService
	return func() tea.Msg {
		suggestion, ok, err := assist.Suggest(ctx, name)
		return suggestionMsg{name: name, suggestion: suggestion, ok: ok, err: err}
	}
}

func (m Model) cmdExpand(text string) tea.Cmd {
	ctx, assist := m.ctx, m.services.AssistService
	return func() tea.Msg {
		drafts, err := assist.Expand(ctx, text)
		return expandedMsg{drafts: drafts, err: err}
	}
}

// cmdImport creates drafts in the background and streams every created item
// back as an importedItemMsg, followed by one importDoneMsg.
func (m Model) cmdImport(drafts []models.ItemDraft) tea.Cmd {
	ctx, items := m.ctx, m.services.ItemService

	// sized so the worker never blocks on a slow event loop
	stream := make(chan tea.Msg, len(drafts)+1)
	go func() {
		defer close(stream)
		created, err := items.Import(ctx, drafts, func(item models.GroceryItem) {
			stream <- importedItemMsg{item: item, stream: stream}
		})
		stream <- importDoneMsg{created: created, err: err}
	}()

	return waitForImport(stream)
}

func waitForImport(stream <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-stream
		if !ok {
			return nil
		}
		return msg
	}
}

func (m Model) cmdCopy(text string, count int) tea.Cmd {
	write := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{count: count, err: write(text)}
	}
}

func (m Model) cmdServerVersion() tea.Cmd {
	ctx, items := m.ctx, m.services.ItemService
	return func() tea.Msg {
		version, err := items.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
