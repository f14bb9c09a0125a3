package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-grocery-list/internal/validators"
	"github.com/MKhiriev/go-grocery-list/models"
)

// ItemValidationService rejects malformed input before it reaches the
// wrapped ItemService. Every rejection wraps ErrInvalidDataProvided together
// with the validator's own error.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(validator validators.Validator) ItemServiceWrapper {
	return &ItemValidationService{validator: validator}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) List(ctx context.Context) ([]models.GroceryItem, error) {
	return v.inner.List(ctx)
}

func (v *ItemValidationService) Create(ctx context.Context, item models.NewItem) (models.GroceryItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, item)
}

func (v *ItemValidationService) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, update)
}

// Delete is idempotent, so any id is accepted.
func (v *ItemValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *ItemValidationService) ClearCompleted(ctx context.Context) error {
	return v.inner.ClearCompleted(ctx)
}
