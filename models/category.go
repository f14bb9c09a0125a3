package models

import "strings"

// Category is the grocery section an item belongs to.
// The set of valid values is closed, see [Categories].
type Category string

const (
	CategoryProduce   Category = "Produce"
	CategoryDairy     Category = "Dairy"
	CategoryMeat      Category = "Meat"
	CategoryPantry    Category = "Pantry"
	CategoryFrozen    Category = "Frozen"
	CategoryBakery    Category = "Bakery"
	CategoryBeverages Category = "Beverages"
	CategoryHousehold Category = "Household"
	CategoryOther     Category = "Other"
)

// CategoryAll is the filter value that matches every category.
// It is never stored.
const CategoryAll Category = "All"

// Categories lists every recognised category in display order.
var Categories = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryPantry,
	CategoryFrozen,
	CategoryBakery,
	CategoryBeverages,
	CategoryHousehold,
	CategoryOther,
}

// IsValid reports whether c is one of [Categories].
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches s against [Categories] ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Priority is the urgency of an item. Lower rank sorts first.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority ordered from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns the sort position of p: High=0, Medium=1, Low=2.
// Unknown values rank after Low.
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i
		}
	}
	return len(Priorities)
}

// IsValid reports whether p is one of [Priorities].
func (p Priority) IsValid() bool {
	return p.Rank() < len(Priorities)
}

// ParsePriority matches s against [Priorities] ignoring case and
// surrounding whitespace.
func ParsePriority(s string) (Priority, bool) {
	s = strings.TrimSpace(s)
	for _, known := range Priorities {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}
