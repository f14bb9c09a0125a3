package tui

import (
	"github.com/MKhiriev/go-grocery-list/models"
	tea "github.com/charmbracelet/bubbletea"
)

type itemsLoadedMsg struct {
	items []models.GroceryItem
	err   error
}

type itemCreatedMsg struct {
	item models.GroceryItem
	err  error
}

type itemUpdatedMsg struct {
	item models.GroceryItem
	err  error
}

type itemDeletedMsg struct {
	id  int64
	err error
}

type completedClearedMsg struct {
	err error
}

type suggestionMsg struct {
	name       string
	suggestion models.Suggestion
	ok         bool
	err        error
}

type expandedMsg struct {
	drafts []models.ItemDraft
	err    error
}

// importedItemMsg carries one created item while an import is running.
// stream delivers the next message.
type importedItemMsg struct {
	item   models.GroceryItem
	stream <-chan tea.Msg
}

type importDoneMsg struct {
	created int
	err     error
}

type copiedMsg struct {
	count int
	err   error
}

type serverVersionMsg struct {
	version string
	err     error
}
