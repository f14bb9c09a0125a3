// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listview

import "github.com/MKhiriev/go-grocery-list/models"

// View is the rendered state of the list for one (items, filter) pair.
type View struct {
	Groups []Group

	// VisibleCount is the number of items across all groups.
	VisibleCount int
	// TotalCount and CompletedCount are over the unfiltered items.
	TotalCount     int
	CompletedCount int
}

// HasCompleted reports whether "clear completed" applies to anything.
func (v View) HasCompleted() bool {
	return v.CompletedCount > 0
}

// Rows flattens the groups in display order.
func (v View) Rows() []models.GroceryItem {
	rows := make([]models.GroceryItem, 0, v.VisibleCount)
	for _, g := range v.Groups {
		rows = append(rows, g.Items...)
	}
	return rows
}

// Build recomputes the whole view. It does not modify items.
func Build(items []models.GroceryItem, f Filter) View {
	visible := Visible(items, f)

	view := View{
		Groups:       GroupItems(visible),
		VisibleCount: len(visible),
		TotalCount:   len(items),
	}
	for _, item := range items {
		if item.Completed {
			view.CompletedCount++
		}
	}
	return view
}
