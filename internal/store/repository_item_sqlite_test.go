package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Initialize(ctx))
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSQLite_CreateThenListIncludesRecordWithDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).ItemRepository

	first, err := repo.Create(ctx, models.NewItem{Name: "Bread", Category: models.CategoryBakery, Priority: models.PriorityLow})
	require.NoError(t, err)
	milk, err := repo.Create(ctx, models.NewItem{Name: "Milk"})
	require.NoError(t, err)

	assert.Greater(t, milk.ID, first.ID)
	assert.Equal(t, models.CategoryOther, milk.Category)
	assert.Equal(t, models.PriorityMedium, milk.Priority)
	assert.Equal(t, "", milk.Quantity)
	assert.Equal(t, "", milk.Location)
	assert.False(t, bool(milk.Completed))
	assert.False(t, milk.CreatedAt.IsZero())
	assert.False(t, milk.CreatedAt.Before(first.CreatedAt))

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, milk, items[0], "most recent first")
	assert.Equal(t, first, items[1])
}

func TestSQLite_UpdateEmptyIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).ItemRepository

	created, err := repo.Create(ctx, models.NewItem{Name: "Eggs", Quantity: "12"})
	require.NoError(t, err)

	got, err := repo.Update(ctx, created.ID, models.ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSQLite_UpdateIsIdempotentAndKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).ItemRepository

	created, err := repo.Create(ctx, models.NewItem{Name: "Eggs", Quantity: "12", Location: "Aldi"})
	require.NoError(t, err)

	done := models.Flag(true)
	update := models.ItemUpdate{Completed: &done}

	once, err := repo.Update(ctx, created.ID, update)
	require.NoError(t, err)
	twice, err := repo.Update(ctx, created.ID, update)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.True(t, bool(twice.Completed))
	assert.Equal(t, created.Name, twice.Name)
	assert.Equal(t, created.Quantity, twice.Quantity)
	assert.Equal(t, created.Location, twice.Location)
	assert.Equal(t, created.CreatedAt, twice.CreatedAt)
}

func TestSQLite_UpdateClearsFieldWithEmptyValue(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).ItemRepository

	created, err := repo.Create(ctx, models.NewItem{Name: "Eggs", Quantity: "12"})
	require.NoError(t, err)

	empty := ""
	got, err := repo.Update(ctx, created.ID, models.ItemUpdate{Quantity: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", got.Quantity)
}

func TestSQLite_UpdateUnknownID(t *testing.T) {
	repo := newSQLiteStorages(t).ItemRepository
	name := "ghost"

	_, err := repo.Update(context.Background(), 999, models.ItemUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = repo.Update(context.Background(), 999, models.ItemUpdate{})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSQLite_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).ItemRepository

	created, err := repo.Create(ctx, models.NewItem{Name: "Milk"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSQLite_DeleteCompletedRemovesOnlyCompleted(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).ItemRepository

	keepOld, err := repo.Create(ctx, models.NewItem{Name: "Rice", Category: models.CategoryPantry})
	require.NoError(t, err)
	drop, err := repo.Create(ctx, models.NewItem{Name: "Milk"})
	require.NoError(t, err)
	keepNew, err := repo.Create(ctx, models.NewItem{Name: "Soap", Category: models.CategoryHousehold, Location: "Target"})
	require.NoError(t, err)

	done := models.Flag(true)
	_, err = repo.Update(ctx, drop.ID, models.ItemUpdate{Completed: &done})
	require.NoError(t, err)

	removed, err := repo.DeleteCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.GroceryItem{keepNew, keepOld}, items)

	removed, err = repo.DeleteCompleted(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSQLite_Ping(t *testing.T) {
	s := newSQLiteStorages(t)
	assert.NoError(t, s.Ping(context.Background()))

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Ping(context.Background()), ErrStoreClosed)
}
