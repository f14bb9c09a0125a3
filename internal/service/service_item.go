package service

import (
	"context"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/store"
	"github.com/MKhiriev/go-grocery-list/models"
)

type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// List never returns a nil slice so the API always answers with an array.
func (s *itemService) List(ctx context.Context) ([]models.GroceryItem, error) {
	items, err := s.itemRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.GroceryItem{}
	}
	return items, nil
}

func (s *itemService) Create(ctx context.Context, item models.NewItem) (models.GroceryItem, error) {
	return s.itemRepository.Create(ctx, item.Normalize())
}

func (s *itemService) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error) {
	return s.itemRepository.Update(ctx, id, update.Normalize())
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	return s.itemRepository.Delete(ctx, id)
}

func (s *itemService) ClearCompleted(ctx context.Context) error {
	removed, err := s.itemRepository.DeleteCompleted(ctx)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Int64("removed", removed).Msg("completed items cleared")
	return nil
}
