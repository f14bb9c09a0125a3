package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/migrations"
)

// Lifecycle states of [DB].
const (
	stateOpen int32 = iota
	stateReady
	stateClosed
)

// DB is an explicitly constructed store handle. It moves through
// open → ready (after Initialize) → closed (after Close); repository calls
// are accepted only while ready.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	state              atomic.Int32
}

// NewConnect opens a connection for the dialect resolved from cfg.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := DetectDialect(cfg)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	db := &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             log,
	}
	db.state.Store(stateOpen)
	return db
}

// Dialect reports which database the handle talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Initialize applies migrations and converges legacy schemas. It is safe to
// call on every startup.
func (db *DB) Initialize(ctx context.Context) error {
	if db.state.Load() == stateClosed {
		return ErrStoreClosed
	}

	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		db.logger.Err(err).Str("func", "*DB.Initialize").Msg("migration failed")
		return fmt.Errorf("%w: %w", ErrMigrating, err)
	}

	if err := db.convergeSchema(ctx); err != nil {
		db.logger.Err(err).Str("func", "*DB.Initialize").Msg("schema convergence failed")
		return fmt.Errorf("%w: %w", ErrMigrating, err)
	}

	db.state.Store(stateReady)
	db.logger.Info().Str("func", "*DB.Initialize").Str("dialect", string(db.dialect)).Msg("store is ready")

	return nil
}

// Close releases the connection pool. Further calls return ErrStoreClosed.
func (db *DB) Close() error {
	if db.state.Swap(stateClosed) == stateClosed {
		return nil
	}
	return db.DB.Close()
}

func (db *DB) checkReady() error {
	switch db.state.Load() {
	case stateReady:
		return nil
	case stateClosed:
		return ErrStoreClosed
	default:
		return ErrStoreNotReady
	}
}

// isRetryable reports the driver's opinion on err, for logging.
func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
