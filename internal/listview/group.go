package listview

import (
	"slices"

	"github.com/MKhiriev/go-grocery-list/models"
)

// Group is one category section of the rendered list.
type Group struct {
	Category models.Category
	Items    []models.GroceryItem
}

// GroupItems partitions items by category. Groups appear in the order their
// category is first met in items; inside a group items are stably sorted by
// priority so equal priorities keep their input order.
func GroupItems(items []models.GroceryItem) []Group {
	var groups []Group
	index := make(map[models.Category]int)

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, Group{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	for _, g := range groups {
		slices.SortStableFunc(g.Items, func(a, b models.GroceryItem) int {
			return a.Priority.Rank() - b.Priority.Rank()
		})
	}

	return groups
}
