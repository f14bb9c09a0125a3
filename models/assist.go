package models

// Suggestion is an AI proposal for the category and priority of a draft item.
type Suggestion struct {
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
}

// ItemDraft is one ingredient produced by recipe expansion, not yet stored.
type ItemDraft struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Quantity string   `json:"quantity"`
	Priority Priority `json:"priority"`
}

// ToNewItem converts the draft into a create payload.
func (d ItemDraft) ToNewItem() NewItem {
	return NewItem{
		Name:     d.Name,
		Category: d.Category,
		Quantity: d.Quantity,
		Priority: d.Priority,
	}.Normalize()
}
