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

// legacySchema is the table layout used before priority and location existed.
const legacySchema = `CREATE TABLE grocery_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	category TEXT DEFAULT 'Other',
	quantity TEXT,
	completed INTEGER DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

func TestInitialize_ConvergesLegacySchema(t *testing.T) {
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, legacySchema)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO grocery_items (name, category) VALUES ('Bread', 'Bakery')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO grocery_items (name, quantity, completed) VALUES ('Milk', '1L', 1)`)
	require.NoError(t, err)

	require.NoError(t, db.Initialize(ctx))
	require.NoError(t, db.Initialize(ctx), "initialize must be idempotent")

	cols, err := db.existingColumns(ctx)
	require.NoError(t, err)
	for _, name := range []string{"id", "name", "category", "quantity", "priority", "location", "completed", "created_at"} {
		assert.True(t, cols[name], "column %s", name)
	}

	items, err := NewItemRepository(db, logger.Nop()).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]models.GroceryItem{}
	for _, it := range items {
		byName[it.Name] = it
	}
	assert.Equal(t, models.CategoryBakery, byName["Bread"].Category)
	assert.Equal(t, models.PriorityMedium, byName["Bread"].Priority)
	assert.Equal(t, "", byName["Bread"].Quantity)
	assert.Equal(t, "", byName["Bread"].Location)
	assert.Equal(t, "1L", byName["Milk"].Quantity)
	assert.True(t, bool(byName["Milk"].Completed))
}
