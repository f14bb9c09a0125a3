package store

import (
	"context"

	"github.com/MKhiriev/go-grocery-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository is the persistent collection of grocery items.
type ItemRepository interface {
	// ListAll returns every item, most recently created first.
	ListAll(ctx context.Context) ([]models.GroceryItem, error)
	// Get returns the item with id or ErrItemNotFound.
	Get(ctx context.Context, id int64) (models.GroceryItem, error)
	// Create inserts item with defaults applied and returns the stored record.
	Create(ctx context.Context, item models.NewItem) (models.GroceryItem, error)
	// Update writes the supplied fields and returns the resulting record,
	// or ErrItemNotFound.
	Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error)
	// Delete removes the item with id. A missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// DeleteCompleted removes every completed item and reports how many
	// rows were removed.
	DeleteCompleted(ctx context.Context) (int64, error)
}

// ListCache holds a serialized copy of the full item list.
type ListCache interface {
	GetList(ctx context.Context) ([]models.GroceryItem, error)
	SetList(ctx context.Context, items []models.GroceryItem) error
	Invalidate(ctx context.Context) error
	Close() error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
