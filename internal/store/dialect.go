package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/migrations"
)

// Dialect identifies the SQL database behind [DB].
type Dialect string

const (
	DialectSQLite   Dialect = migrations.DialectSQLite
	DialectPostgres Dialect = migrations.DialectPostgres
)

// DetectDialect resolves the dialect from an explicit driver name or, when
// driver is empty, from the DSN shape.
func DetectDialect(cfg config.DB) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case config.DriverSQLite, "sqlite":
		return DialectSQLite, nil
	case config.DriverPostgres, "postgresql", "pgx":
		return DialectPostgres, nil
	case "":
	default:
		return "", fmt.Errorf("%w: driver %q", ErrUnsupportedDialect, cfg.Driver)
	}

	dsn := strings.TrimSpace(cfg.DSN)
	switch {
	case dsn == "":
		return "", fmt.Errorf("%w: empty dsn", ErrUnsupportedDialect)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname="):
		return DialectPostgres, nil
	default:
		return DialectSQLite, nil
	}
}

// driverName is the database/sql driver registered for the dialect.
func (d Dialect) driverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite3"
}

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}
