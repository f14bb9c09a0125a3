package store

import "errors"

// Sentinel errors returned by the item store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when an update or lookup targets an id
	// that does not exist.
	ErrItemNotFound = errors.New("grocery item was not found")

	// ErrStoreNotReady is returned by repository calls made before
	// [DB.Initialize] completed.
	ErrStoreNotReady = errors.New("store is not initialized")

	// ErrStoreClosed is returned by repository calls made after [DB.Close].
	ErrStoreClosed = errors.New("store is closed")

	// ErrUnsupportedDialect is returned when the configured driver or DSN
	// does not map to a supported database.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")

	// ErrCacheMiss is returned by [ListCache.GetList] when nothing is cached.
	ErrCacheMiss = errors.New("list cache miss")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrOpeningConnection = errors.New("error opening database connection")
	ErrMigrating         = errors.New("error migrating database schema")
	ErrBuildingSQLQuery  = errors.New("error building sql query")
	ErrExecutingQuery    = errors.New("error executing sql query")
	ErrScanningRow       = errors.New("failed to scan grocery item row")
	ErrScanningRows      = errors.New("failed to scan grocery item rows")
)
