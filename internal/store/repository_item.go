package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/models"
)

// itemRepository is the SQL implementation of [ItemRepository] over the
// grocery_items table. Statements run one at a time on the shared [DB]
// handle and commit before returning.
type itemRepository struct {
	db      *DB
	queries itemQueries
	logger  *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] for db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating item repository")
	return &itemRepository{
		db:      db,
		queries: newItemQueries(db.dialect),
		logger:  logger,
	}
}

func (r *itemRepository) ListAll(ctx context.Context) ([]models.GroceryItem, error) {
	log := logger.FromContext(ctx)

	if err := r.db.checkReady(); err != nil {
		return nil, err
	}

	query, args, err := r.queries.selectAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logFailure(log, err, "itemRepository.ListAll", "failed to list items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.GroceryItem, 0, 32)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.ListAll").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logFailure(log, rowsErr, "itemRepository.ListAll", "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *itemRepository) Get(ctx context.Context, id int64) (models.GroceryItem, error) {
	if err := r.db.checkReady(); err != nil {
		return models.GroceryItem{}, err
	}

	query, args, err := r.queries.selectByID(id)
	if err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "itemRepository.Get", id, query, args)
}

// Create applies defaults to omitted optional fields before inserting.
func (r *itemRepository) Create(ctx context.Context, item models.NewItem) (models.GroceryItem, error) {
	if err := r.db.checkReady(); err != nil {
		return models.GroceryItem{}, err
	}

	query, args, err := r.queries.insert(item.Normalize())
	if err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "itemRepository.Create", 0, query, args)
}

// Update with no supplied fields leaves the row untouched and returns it.
func (r *itemRepository) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error) {
	if err := r.db.checkReady(); err != nil {
		return models.GroceryItem{}, err
	}

	query, args, err := r.queries.update(id, update)
	if errors.Is(err, errEmptyUpdate) {
		return r.Get(ctx, id)
	}
	if err != nil {
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "itemRepository.Update", id, query, args)
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.checkReady(); err != nil {
		return err
	}

	query, args, err := r.queries.deleteByID(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logFailure(logger.FromContext(ctx), err, "itemRepository.Delete", "failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *itemRepository) DeleteCompleted(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	if err := r.db.checkReady(); err != nil {
		return 0, err
	}

	query, args, err := r.queries.deleteCompleted()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logFailure(log, err, "itemRepository.DeleteCompleted", "failed to delete completed items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		// the rows are gone either way
		log.Warn().Err(err).Str("func", "itemRepository.DeleteCompleted").Msg("rows affected unavailable")
		return 0, nil
	}
	log.Debug().Str("func", "itemRepository.DeleteCompleted").Int64("removed", removed).Msg("completed items removed")

	return removed, nil
}

// queryOne runs a statement returning a single item row.
func (r *itemRepository) queryOne(ctx context.Context, fn string, id int64, query string, args []any) (models.GroceryItem, error) {
	log := logger.FromContext(ctx)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", fn).Int64("id", id).Msg("item not found")
		return models.GroceryItem{}, ErrItemNotFound
	case err != nil:
		r.logFailure(log, err, fn, "item statement failed")
		return models.GroceryItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *itemRepository) logFailure(log *logger.Logger, err error, fn, msg string) {
	log.Err(err).
		Str("func", fn).
		Str("dialect", string(r.db.dialect)).
		Str("sqlstate", postgresError(err)).
		Bool("retryable", r.db.isRetryable(err)).
		Msg(msg)
}
