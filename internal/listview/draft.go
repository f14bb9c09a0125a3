package listview

import (
	"strings"

	"github.com/MKhiriev/go-grocery-list/models"
)

// Draft is the add-item form before it is submitted.
type Draft struct {
	Name     string
	Quantity string
	Category models.Category
	Priority models.Priority
	Location string
}

// NewDraft returns an empty form with the default category and priority.
func NewDraft() Draft {
	return Draft{
		Category: models.CategoryOther,
		Priority: models.PriorityMedium,
	}
}

// Reset clears the form after a successful add.
func (d *Draft) Reset() {
	*d = NewDraft()
}

// Ready reports whether the form can be submitted.
func (d Draft) Ready() bool {
	return strings.TrimSpace(d.Name) != ""
}

// Apply takes an assistant suggestion. Values outside the known sets are
// ignored.
func (d *Draft) Apply(s models.Suggestion) {
	if s.Category.IsValid() {
		d.Category = s.Category
	}
	if s.Priority.IsValid() {
		d.Priority = s.Priority
	}
}

func (d Draft) ToNewItem() models.NewItem {
	return models.NewItem{
		Name:     d.Name,
		Quantity: d.Quantity,
		Category: d.Category,
		Priority: d.Priority,
		Location: d.Location,
	}.Normalize()
}

// NextCategory cycles c through the filter choices: All, then each category.
// step is +1 or -1.
func NextCategory(c models.Category, step int) models.Category {
	choices := append([]models.Category{models.CategoryAll}, models.Categories...)

	current := 0
	for i, choice := range choices {
		if choice == c {
			current = i
			break
		}
	}

	next := (current + step) % len(choices)
	if next < 0 {
		next += len(choices)
	}
	return choices[next]
}
