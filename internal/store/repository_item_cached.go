package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/models"
)

// cachedItemRepository serves ListAll from a [ListCache] and drops the cached
// list after every successful mutation. Cache failures are logged and
// otherwise ignored: the database stays the source of truth.
type cachedItemRepository struct {
	next  ItemRepository
	cache ListCache
}

// NewCachedItemRepository decorates next with a cache-aside list cache.
func NewCachedItemRepository(next ItemRepository, cache ListCache) ItemRepository {
	return &cachedItemRepository{next: next, cache: cache}
}

func (c *cachedItemRepository) ListAll(ctx context.Context) ([]models.GroceryItem, error) {
	log := logger.FromContext(ctx)

	items, err := c.cache.GetList(ctx)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "cachedItemRepository.ListAll").Msg("list cache read failed")
	}

	items, err = c.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if setErr := c.cache.SetList(ctx, items); setErr != nil {
		log.Warn().Err(setErr).Str("func", "cachedItemRepository.ListAll").Msg("list cache write failed")
	}

	return items, nil
}

func (c *cachedItemRepository) Get(ctx context.Context, id int64) (models.GroceryItem, error) {
	return c.next.Get(ctx, id)
}

func (c *cachedItemRepository) Create(ctx context.Context, item models.NewItem) (models.GroceryItem, error) {
	created, err := c.next.Create(ctx, item)
	if err == nil {
		c.invalidate(ctx)
	}
	return created, err
}

func (c *cachedItemRepository) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error) {
	updated, err := c.next.Update(ctx, id, update)
	if err == nil && !update.IsEmpty() {
		c.invalidate(ctx)
	}
	return updated, err
}

func (c *cachedItemRepository) Delete(ctx context.Context, id int64) error {
	err := c.next.Delete(ctx, id)
	if err == nil {
		c.invalidate(ctx)
	}
	return err
}

func (c *cachedItemRepository) DeleteCompleted(ctx context.Context) (int64, error) {
	removed, err := c.next.DeleteCompleted(ctx)
	if err == nil {
		c.invalidate(ctx)
	}
	return removed, err
}

func (c *cachedItemRepository) invalidate(ctx context.Context) {
	if err := c.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "cachedItemRepository.invalidate").Msg("list cache invalidation failed")
	}
}
