package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
)

// Storages owns the database handle, the optional list cache and the
// repositories built on top of them.
type Storages struct {
	ItemRepository ItemRepository

	db    *DB
	cache ListCache
}

// NewStorages opens the database (state: open). Call Initialize before use
// and Close on shutdown.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	return newStorages(ctx, db, cfg.Cache, log)
}

func newStorages(ctx context.Context, db *DB, cacheCfg config.Cache, log *logger.Logger) (*Storages, error) {
	s := &Storages{db: db}
	repo := NewItemRepository(db, log)

	if cacheCfg.RedisAddress != "" {
		cache, err := NewRedisListCache(ctx, cacheCfg, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		s.cache = cache
		repo = NewCachedItemRepository(repo, cache)
	}

	s.ItemRepository = repo
	return s, nil
}

// Initialize converges the schema and moves the store to ready. A cached
// list is dropped since back-filling may have changed rows.
func (s *Storages) Initialize(ctx context.Context) error {
	if err := s.db.Initialize(ctx); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.db.logger.Warn().Err(err).Msg("list cache invalidation failed")
		}
	}

	return nil
}

// Ping checks that the database answers and the store is ready.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	return s.db.PingContext(ctx)
}

// Close releases the cache and the database.
func (s *Storages) Close() error {
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}
