package listview

import "github.com/MKhiriev/go-grocery-list/models"

// The helpers below patch the local list after the server acknowledged a
// mutation. They return a new slice and leave the input untouched.

// Prepend puts a freshly created item first, matching server order.
func Prepend(items []models.GroceryItem, item models.GroceryItem) []models.GroceryItem {
	out := make([]models.GroceryItem, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// ReplaceByID swaps in the server's copy of an updated item. The list is
// returned unchanged if the id is not present.
func ReplaceByID(items []models.GroceryItem, item models.GroceryItem) []models.GroceryItem {
	out := make([]models.GroceryItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == item.ID {
			out[i] = item
			break
		}
	}
	return out
}

func RemoveByID(items []models.GroceryItem, id int64) []models.GroceryItem {
	out := make([]models.GroceryItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// RemoveCompleted drops every completed item, keeping the rest in order.
func RemoveCompleted(items []models.GroceryItem) []models.GroceryItem {
	out := make([]models.GroceryItem, 0, len(items))
	for _, item := range items {
		if !item.Completed {
			out = append(out, item)
		}
	}
	return out
}

// FindByID returns the item with id.
func FindByID(items []models.GroceryItem, id int64) (models.GroceryItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.GroceryItem{}, false
}
