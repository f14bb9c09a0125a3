package listview

import (
	"strings"

	"github.com/MKhiriev/go-grocery-list/models"
	"golang.org/x/text/cases"
)

// Filter is the set of user controls over the visible list. The zero value
// shows everything.
type Filter struct {
	// Search is matched case-insensitively against item names.
	Search string

	// Category is CategoryAll (or empty) for no restriction.
	Category models.Category

	// NearMarket enables the Location match.
	NearMarket bool

	// Location is the market the user is at.
	Location string
}

// matcher holds a Filter with its strings already case folded.
type matcher struct {
	fold     cases.Caser
	search   string
	category models.Category
	near     bool
	location string
}

func newMatcher(f Filter) *matcher {
	fold := cases.Fold()
	return &matcher{
		fold:     fold,
		search:   fold.String(f.Search),
		category: f.Category,
		near:     f.NearMarket,
		location: fold.String(f.Location),
	}
}

func (m *matcher) match(item models.GroceryItem) bool {
	if m.search != "" && !strings.Contains(m.fold.String(item.Name), m.search) {
		return false
	}

	if m.category != "" && m.category != models.CategoryAll && item.Category != m.category {
		return false
	}

	// an item without a location is available at any market
	if m.near && item.HasLocation() && !strings.Contains(m.fold.String(item.Location), m.location) {
		return false
	}

	return true
}

// Visible returns the items that pass every control of f, in input order.
func Visible(items []models.GroceryItem, f Filter) []models.GroceryItem {
	m := newMatcher(f)

	visible := make([]models.GroceryItem, 0, len(items))
	for _, item := range items {
		if m.match(item) {
			visible = append(visible, item)
		}
	}
	return visible
}
