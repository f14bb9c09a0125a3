package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/adapter"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/validators"
	"github.com/MKhiriev/go-grocery-list/models"
)

type clientItemService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientItemService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientItemService {
	return &clientItemService{adapter: serverAdapter, logger: logger}
}

func (s *clientItemService) List(ctx context.Context) ([]models.GroceryItem, error) {
	items, err := s.adapter.GetItems(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return items, nil
}

func (s *clientItemService) Add(ctx context.Context, item models.NewItem) (models.GroceryItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyName)
	}

	created, err := s.adapter.AddItem(ctx, item.Normalize())
	if err != nil {
		return models.GroceryItem{}, mapAdapterError(err)
	}
	return created, nil
}

func (s *clientItemService) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error) {
	updated, err := s.adapter.UpdateItem(ctx, id, update.Normalize())
	if err != nil {
		return models.GroceryItem{}, mapAdapterError(err)
	}
	return updated, nil
}

func (s *clientItemService) Toggle(ctx context.Context, item models.GroceryItem) (models.GroceryItem, error) {
	return s.Update(ctx, item.ID, models.ToggleCompleted(item))
}

func (s *clientItemService) Delete(ctx context.Context, id int64) error {
	return mapAdapterError(s.adapter.DeleteItem(ctx, id))
}

func (s *clientItemService) ClearCompleted(ctx context.Context) error {
	return mapAdapterError(s.adapter.ClearCompleted(ctx))
}

func (s *clientItemService) Import(ctx context.Context, drafts []models.ItemDraft, onCreated func(models.GroceryItem)) (int, error) {
	created := 0
	for _, draft := range drafts {
		if strings.TrimSpace(draft.Name) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return created, err
		}

		item, err := s.adapter.AddItem(ctx, draft.ToNewItem())
		if err != nil {
			s.logger.Err(err).Str("draft", draft.Name).Int("created", created).Msg("recipe import stopped")
			return created, fmt.Errorf("import %q: %w", draft.Name, mapAdapterError(err))
		}

		created++
		if onCreated != nil {
			onCreated(item)
		}
	}

	return created, nil
}

func (s *clientItemService) ServerVersion(ctx context.Context) (string, error) {
	v, err := s.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return v, nil
}
