// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// GroceryItem is a single entry of the shopping list.
//
// ID and CreatedAt are assigned by the store on creation and never change.
// Category and Priority always hold members of [Categories] and [Priorities].
type GroceryItem struct {
	ID        int64
	Name      string
	Category  Category
	Quantity  string
	Priority  Priority
	Location  string
	Completed Flag
	CreatedAt time.Time
}

type groceryItemJSON struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Quantity  string    `json:"quantity"`
	Priority  Priority  `json:"priority"`
	Location  *string   `json:"location"`
	Completed Flag      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON renders an empty location as null.
func (i GroceryItem) MarshalJSON() ([]byte, error) {
	out := groceryItemJSON{
		ID:        i.ID,
		Name:      i.Name,
		Category:  i.Category,
		Quantity:  i.Quantity,
		Priority:  i.Priority,
		Completed: i.Completed,
		CreatedAt: i.CreatedAt.UTC(),
	}
	if i.Location != "" {
		loc := i.Location
		out.Location = &loc
	}
	return json.Marshal(out)
}

// UnmarshalJSON treats a null location as empty.
func (i *GroceryItem) UnmarshalJSON(data []byte) error {
	var in groceryItemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*i = GroceryItem{
		ID:        in.ID,
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  in.Quantity,
		Priority:  in.Priority,
		Completed: in.Completed,
		CreatedAt: in.CreatedAt,
	}
	if in.Location != nil {
		i.Location = *in.Location
	}
	return nil
}

// HasLocation reports whether the item is tied to a particular market.
func (i GroceryItem) HasLocation() bool {
	return strings.TrimSpace(i.Location) != ""
}

// NewItem is the create payload. Empty optional fields receive defaults.
type NewItem struct {
	Name     string   `json:"name"`
	Category Category `json:"category,omitempty"`
	Quantity string   `json:"quantity,omitempty"`
	Priority Priority `json:"priority,omitempty"`
	Location string   `json:"location,omitempty"`
}

// Normalize trims free text and fills omitted optional fields with
// their defaults: Other, Medium, empty quantity and location.
func (n NewItem) Normalize() NewItem {
	n.Name = strings.TrimSpace(n.Name)
	n.Quantity = strings.TrimSpace(n.Quantity)
	n.Location = strings.TrimSpace(n.Location)
	if strings.TrimSpace(string(n.Category)) == "" {
		n.Category = CategoryOther
	}
	if strings.TrimSpace(string(n.Priority)) == "" {
		n.Priority = PriorityMedium
	}
	return n
}

// ItemUpdate is a partial update. A nil field is left unchanged; a non-nil
// pointer to an empty value sets the field to that value.
type ItemUpdate struct {
	Name      *string   `json:"name,omitempty"`
	Category  *Category `json:"category,omitempty"`
	Quantity  *string   `json:"quantity,omitempty"`
	Priority  *Priority `json:"priority,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Completed *Flag     `json:"completed,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Quantity == nil &&
		u.Priority == nil && u.Location == nil && u.Completed == nil
}

// Normalize trims supplied free-text fields.
func (u ItemUpdate) Normalize() ItemUpdate {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	u.Name = trim(u.Name)
	u.Quantity = trim(u.Quantity)
	u.Location = trim(u.Location)
	return u
}

// Apply returns item with every supplied field of u written over it.
func (u ItemUpdate) Apply(item GroceryItem) GroceryItem {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
	if u.Priority != nil {
		item.Priority = *u.Priority
	}
	if u.Location != nil {
		item.Location = *u.Location
	}
	if u.Completed != nil {
		item.Completed = *u.Completed
	}
	return item
}

// ToggleCompleted builds the update that flips the completion state of item.
func ToggleCompleted(item GroceryItem) ItemUpdate {
	next := !item.Completed
	return ItemUpdate{Completed: &next}
}
