// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package listview

import (
	"testing"

	"github.com/MKhiriev/go-grocery-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id int64, name string, c models.Category, p models.Priority) models.GroceryItem {
	return models.GroceryItem{ID: id, Name: name, Category: c, Priority: p}
}

func names(items []models.GroceryItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Name)
	}
	return out
}

func TestVisible_FilterComposition(t *testing.T) {
	apple := item(1, "apple", models.CategoryProduce, models.PriorityMedium)
	milk := item(2, "milk", models.CategoryDairy, models.PriorityMedium)
	items := []models.GroceryItem{apple, milk}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero filter keeps all", Filter{}, []string{"apple", "milk"}},
		{"search with All", Filter{Search: "app", Category: models.CategoryAll}, []string{"apple"}},
		{"category only", Filter{Category: models.CategoryDairy}, []string{"milk"}},
		{"search is case insensitive", Filter{Search: "MiL"}, []string{"milk"}},
		{"search and category disagree", Filter{Search: "app", Category: models.CategoryDairy}, []string{}},
		{"unmatched search", Filter{Search: "bread"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Visible(items, tt.filter)))
		})
	}
}

func TestVisible_Location(t *testing.T) {
	noLocation := item(1, "bananas", models.CategoryProduce, models.PriorityMedium)
	tj := item(2, "dumplings", models.CategoryFrozen, models.PriorityMedium)
	tj.Location = "Trader Joe's"
	items := []models.GroceryItem{noLocation, tj}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"off ignores location", Filter{Location: "Whole Foods"}, []string{"bananas", "dumplings"}},
		{"matching market", Filter{NearMarket: true, Location: "trader"}, []string{"bananas", "dumplings"}},
		{"other market", Filter{NearMarket: true, Location: "Whole Foods"}, []string{"bananas"}},
		{"empty target keeps all", Filter{NearMarket: true}, []string{"bananas", "dumplings"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Visible(items, tt.filter)))
		})
	}
}

func TestGroupItems_PriorityWithinGroup(t *testing.T) {
	items := []models.GroceryItem{
		item(3, "x", models.CategoryPantry, models.PriorityLow),
		item(2, "y", models.CategoryPantry, models.PriorityHigh),
		item(1, "z", models.CategoryPantry, models.PriorityMedium),
	}

	groups := GroupItems(items)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"y", "z", "x"}, names(groups[0].Items))
	assert.Equal(t, "x", items[0].Name, "input must not be reordered")
}

func TestGroupItems_FirstEncounteredOrderAndStability(t *testing.T) {
	items := []models.GroceryItem{
		item(6, "cheese", models.CategoryDairy, models.PriorityLow),
		item(5, "apples", models.CategoryProduce, models.PriorityMedium),
		item(4, "milk", models.CategoryDairy, models.PriorityHigh),
		item(3, "pears", models.CategoryProduce, models.PriorityMedium),
		item(2, "yogurt", models.CategoryDairy, models.PriorityHigh),
		item(1, "kale", models.CategoryProduce, models.PriorityHigh),
	}

	groups := GroupItems(items)

	require.Len(t, groups, 2)
	assert.Equal(t, models.CategoryDairy, groups[0].Category)
	assert.Equal(t, []string{"milk", "yogurt", "cheese"}, names(groups[0].Items))
	assert.Equal(t, models.CategoryProduce, groups[1].Category)
	assert.Equal(t, []string{"kale", "apples", "pears"}, names(groups[1].Items))
}

func TestGroupItems_Empty(t *testing.T) {
	assert.Empty(t, GroupItems(nil))
}

func TestBuild(t *testing.T) {
	bread := item(3, "bread", models.CategoryBakery, models.PriorityMedium)
	milk := item(2, "milk", models.CategoryDairy, models.PriorityHigh)
	milk.Completed = true
	milk.Quantity = "1 gal"
	soap := item(1, "soap", models.CategoryHousehold, models.PriorityLow)
	items := []models.GroceryItem{bread, milk, soap}

	view := Build(items, Filter{Category: models.CategoryDairy})

	assert.Equal(t, 1, view.VisibleCount)
	assert.Equal(t, 3, view.TotalCount)
	assert.Equal(t, 1, view.CompletedCount)
	assert.True(t, view.HasCompleted())
	assert.Equal(t, []string{"milk"}, names(view.Rows()))
	assert.Equal(t, "Dairy\n- [x] milk (1 gal)\n", view.PlainText())

	none := Build(RemoveCompleted(items), Filter{})
	assert.False(t, none.HasCompleted())
	assert.Equal(t, "Bakery\n- [ ] bread\n\nHousehold\n- [ ] soap\n", none.PlainText())
}

func TestPatching(t *testing.T) {
	a := item(1, "a", models.CategoryOther, models.PriorityMedium)
	b := item(2, "b", models.CategoryOther, models.PriorityMedium)
	b.Completed = true
	items := []models.GroceryItem{b, a}

	t.Run("prepend", func(t *testing.T) {
		c := item(3, "c", models.CategoryOther, models.PriorityMedium)
		assert.Equal(t, []string{"c", "b", "a"}, names(Prepend(items, c)))
		assert.Len(t, items, 2)
	})

	t.Run("replace", func(t *testing.T) {
		renamed := a
		renamed.Name = "A"
		got := ReplaceByID(items, renamed)
		assert.Equal(t, []string{"b", "A"}, names(got))
		assert.Equal(t, "a", items[1].Name)

		missing := item(9, "z", models.CategoryOther, models.PriorityMedium)
		assert.Equal(t, []string{"b", "a"}, names(ReplaceByID(items, missing)))
	})

	t.Run("remove", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, names(RemoveByID(items, 2)))
		assert.Equal(t, []string{"b", "a"}, names(RemoveByID(items, 42)))
	})

	t.Run("remove completed", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, names(RemoveCompleted(items)))
	})

	t.Run("find", func(t *testing.T) {
		got, ok := FindByID(items, 1)
		assert.True(t, ok)
		assert.Equal(t, "a", got.Name)
		_, ok = FindByID(items, 5)
		assert.False(t, ok)
	})
}

func TestDraft(t *testing.T) {
	d := NewDraft()
	assert.False(t, d.Ready())

	d.Name = "  Oat milk "
	d.Quantity = " 2 "
	d.Apply(models.Suggestion{Category: models.CategoryDairy, Priority: "Urgent"})

	assert.True(t, d.Ready())
	assert.Equal(t, models.NewItem{
		Name:     "Oat milk",
		Quantity: "2",
		Category: models.CategoryDairy,
		Priority: models.PriorityMedium,
	}, d.ToNewItem())

	d.Reset()
	assert.Equal(t, NewDraft(), d)
}

func TestNextCategory(t *testing.T) {
	assert.Equal(t, models.CategoryProduce, NextCategory(models.CategoryAll, 1))
	assert.Equal(t, models.CategoryOther, NextCategory(models.CategoryAll, -1))
	assert.Equal(t, models.CategoryAll, NextCategory(models.CategoryOther, 1))
	assert.Equal(t, models.CategoryProduce, NextCategory("", 1))
}
