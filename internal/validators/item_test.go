// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-grocery-list/models"
)

func ptr[T any](v T) *T { return &v }

func TestItemValidator_NewItem(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		item    models.NewItem
		wantErr error
	}{
		{name: "name only", item: models.NewItem{Name: "Milk"}},
		{name: "all fields", item: models.NewItem{Name: "Milk", Category: models.CategoryDairy, Priority: models.PriorityHigh, Quantity: "1L", Location: "Aldi"}},
		{name: "blank name", item: models.NewItem{Name: "   "}, wantErr: ErrEmptyName},
		{name: "missing name", item: models.NewItem{Category: models.CategoryDairy}, wantErr: ErrEmptyName},
		{name: "unknown category", item: models.NewItem{Name: "Milk", Category: "Snacks"}, wantErr: ErrInvalidCategory},
		{name: "lowercase category", item: models.NewItem{Name: "Milk", Category: "dairy"}, wantErr: ErrInvalidCategory},
		{name: "unknown priority", item: models.NewItem{Name: "Milk", Priority: "Urgent"}, wantErr: ErrInvalidPriority},
		{name: "long name", item: models.NewItem{Name: strings.Repeat("a", MaxNameLength+1)}, wantErr: ErrFieldTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.item)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(ctx, &tt.item), tt.wantErr)
		})
	}
}

func TestItemValidator_Update(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		update  models.ItemUpdate
		wantErr error
	}{
		{name: "empty update", update: models.ItemUpdate{}},
		{name: "completed only", update: models.ItemUpdate{Completed: ptr(models.Flag(true))}},
		{name: "clearing quantity", update: models.ItemUpdate{Quantity: ptr("")}},
		{name: "blank name", update: models.ItemUpdate{Name: ptr("")}, wantErr: ErrEmptyName},
		{name: "empty category", update: models.ItemUpdate{Category: ptr(models.Category(""))}, wantErr: ErrInvalidCategory},
		{name: "bad priority", update: models.ItemUpdate{Priority: ptr(models.Priority("ASAP"))}, wantErr: ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidator_FieldScoping(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()
	item := models.NewItem{Name: "", Category: "Snacks"}

	assert.ErrorIs(t, v.Validate(ctx, item, FieldCategory), ErrInvalidCategory)
	assert.ErrorIs(t, v.Validate(ctx, item, FieldName), ErrEmptyName)
	assert.NoError(t, v.Validate(ctx, item, FieldPriority))
	assert.ErrorIs(t, v.Validate(ctx, item, "colour"), ErrUnknownField)
}

func TestItemValidator_IDAndUnsupported(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, int64(1)))
	assert.ErrorIs(t, v.Validate(ctx, int64(0)), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, "milk"), ErrUnsupportedType)
}
