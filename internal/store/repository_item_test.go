package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/models"
)

var itemRowColumns = []string{"id", "name", "category", "quantity", "priority", "location", "completed", "created_at"}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
	db.state.Store(stateReady)
	return db, mock
}

func newTestItemRepo(t *testing.T) (ItemRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewItemRepository(db, logger.Nop()), mock
}

func TestItemRepository_ListAll(t *testing.T) {
	repo, mock := newTestItemRepo(t)
	newer := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM grocery_items ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(2, "Milk", "Dairy", "1L", "High", "", 1, newer).
			AddRow(1, "Bread", "Bakery", "", "Medium", "Lidl", 0, "2026-05-02 08:00:00"))

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.GroceryItem{
		ID: 2, Name: "Milk", Category: models.CategoryDairy, Quantity: "1L",
		Priority: models.PriorityHigh, Completed: true, CreatedAt: newer,
	}, items[0])
	assert.Equal(t, "Lidl", items[1].Location)
	assert.Equal(t, older, items[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_ListAll_Empty(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM grocery_items").
		WillReturnRows(sqlmock.NewRows(itemRowColumns))

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemRepository_ListAll_QueryError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM grocery_items").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestItemRepository_Create_AppliesDefaults(t *testing.T) {
	repo, mock := newTestItemRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery("INSERT INTO grocery_items").
		WithArgs("Milk", "Other", "", "Medium", "", int64(0)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(1, "Milk", "Other", "", "Medium", "", 0, now))

	created, err := repo.Create(context.Background(), models.NewItem{Name: " Milk "})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.CategoryOther, created.Category)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.False(t, bool(created.Completed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update(t *testing.T) {
	repo, mock := newTestItemRepo(t)
	now := time.Now().UTC().Truncate(time.Second)
	done := models.Flag(true)

	mock.ExpectQuery(`UPDATE grocery_items SET completed = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(int64(1), int64(4)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(4, "Eggs", "Dairy", "12", "Low", "", 1, now))

	updated, err := repo.Update(context.Background(), 4, models.ItemUpdate{Completed: &done})
	require.NoError(t, err)
	assert.True(t, bool(updated.Completed))
	assert.Equal(t, "12", updated.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestItemRepo(t)
	name := "Eggs"

	mock.ExpectQuery("UPDATE grocery_items").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), 404, models.ItemUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemRepository_Update_EmptyReadsCurrentRow(t *testing.T) {
	repo, mock := newTestItemRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(`SELECT (.+) FROM grocery_items WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(4, "Eggs", "Dairy", "12", "Low", "", 0, now))

	got, err := repo.Update(context.Background(), 4, models.ItemUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Eggs", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Delete(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec(`DELETE FROM grocery_items WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_DeleteCompleted(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec(`DELETE FROM grocery_items WHERE completed <> \$1`).
		WithArgs(0).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteCompleted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestItemRepository_Lifecycle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db, logger.Nop())
	mock.ExpectClose()

	db.state.Store(stateOpen)
	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreNotReady)

	require.NoError(t, db.Close())
	_, err = repo.Create(context.Background(), models.NewItem{Name: "Milk"})
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), ErrStoreClosed)
	assert.ErrorIs(t, db.Initialize(context.Background()), ErrStoreClosed)

	// closing twice is harmless
	assert.NoError(t, db.Close())
}
