package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// convergedColumn is an optional column that older databases may lack.
type convergedColumn struct {
	name       string
	definition string
	// backfill replaces NULLs left by rows written before the column had
	// a default.
	backfill string
}

var convergedColumns = []convergedColumn{
	{name: "category", definition: "TEXT DEFAULT 'Other'", backfill: "'Other'"},
	{name: "quantity", definition: "TEXT DEFAULT ''", backfill: "''"},
	{name: "priority", definition: "TEXT DEFAULT 'Medium'", backfill: "'Medium'"},
	{name: "location", definition: "TEXT DEFAULT ''", backfill: "''"},
	{name: "completed", definition: "INTEGER DEFAULT 0", backfill: "0"},
}

const (
	sqliteListColumns   = `PRAGMA table_info(` + itemsTable + `)`
	postgresListColumns = `SELECT column_name FROM information_schema.columns WHERE table_name = $1 AND table_schema = current_schema()`
)

// convergeSchema adds any missing optional column with its default and
// back-fills NULLs, keeping existing rows.
func (db *DB) convergeSchema(ctx context.Context) error {
	existing, err := db.existingColumns(ctx)
	if err != nil {
		return err
	}

	for _, col := range convergedColumns {
		if !existing[col.name] {
			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", itemsTable, col.name, col.definition)
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("adding column %s: %w", col.name, err)
			}
			db.logger.Info().Str("func", "*DB.convergeSchema").Str("column", col.name).Msg("added missing column")
		}

		stmt := fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s IS NULL", itemsTable, col.name, col.backfill, col.name)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("back-filling column %s: %w", col.name, err)
		}
	}

	return nil
}

func (db *DB) existingColumns(ctx context.Context) (map[string]bool, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if db.dialect == DialectPostgres {
		rows, err = db.QueryContext(ctx, postgresListColumns, itemsTable)
	} else {
		rows, err = db.QueryContext(ctx, sqliteListColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	nameIdx := 0
	for i, c := range cols {
		if strings.EqualFold(c, "name") || strings.EqualFold(c, "column_name") {
			nameIdx = i
		}
	}

	existing := make(map[string]bool)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		existing[strings.ToLower(asString(values[nameIdx]))] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return existing, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}
