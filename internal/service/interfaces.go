package service

import (
	"context"

	"github.com/MKhiriev/go-grocery-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ItemServiceWrapper

// ItemService is the server-side use case layer over the item store.
type ItemService interface {
	List(ctx context.Context) ([]models.GroceryItem, error)
	Create(ctx context.Context, item models.NewItem) (models.GroceryItem, error)
	Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error)
	Delete(ctx context.Context, id int64) error
	ClearCompleted(ctx context.Context) error
}

// ItemServiceWrapper decorates an ItemService, e.g. with validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Health reports whether the store answers.
	Health(ctx context.Context) error
}

// HealthChecker is anything that can be pinged.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
