// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/mock"
	"github.com/MKhiriev/go-grocery-list/internal/store"
	"github.com/MKhiriev/go-grocery-list/models"
)

var errStorage = errors.New("storage error")

func ptr[T any](v T) *T { return &v }

func newTestItemSvc(t *testing.T) (ItemService, *mock.MockItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	return NewItemService(repo, logger.Nop()), repo
}

func TestItemService_List(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()
	items := []models.GroceryItem{{ID: 2, Name: "Eggs"}, {ID: 1, Name: "Milk"}}

	repo.EXPECT().ListAll(ctx).Return(items, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestItemService_List_NilBecomesEmpty(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListAll(ctx).Return(nil, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestItemService_List_Error(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListAll(ctx).Return(nil, errStorage)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, errStorage)
}

func TestItemService_Create_AppliesDefaults(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, models.NewItem{Name: "Milk", Category: models.CategoryOther, Priority: models.PriorityMedium}).
		Return(models.GroceryItem{ID: 1, Name: "Milk"}, nil)

	got, err := svc.Create(ctx, models.NewItem{Name: "  Milk "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestItemService_Update_TrimsSuppliedFields(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().
		Update(ctx, int64(5), models.ItemUpdate{Quantity: ptr("2L")}).
		Return(models.GroceryItem{ID: 5, Quantity: "2L"}, nil)

	got, err := svc.Update(ctx, 5, models.ItemUpdate{Quantity: ptr(" 2L ")})
	require.NoError(t, err)
	assert.Equal(t, "2L", got.Quantity)
}

func TestItemService_Update_NotFound(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, int64(9), gomock.Any()).Return(models.GroceryItem{}, store.ErrItemNotFound)

	_, err := svc.Update(ctx, 9, models.ItemUpdate{})
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_Delete(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, int64(3)).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 3))
}

func TestItemService_ClearCompleted(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()

	repo.EXPECT().DeleteCompleted(ctx).Return(int64(2), nil)
	assert.NoError(t, svc.ClearCompleted(ctx))

	repo.EXPECT().DeleteCompleted(ctx).Return(int64(0), errStorage)
	assert.ErrorIs(t, svc.ClearCompleted(ctx), errStorage)
}
