package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-grocery-list/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.GroceryItem, error) {
	var item models.GroceryItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Quantity,
		&item.Priority,
		&item.Location,
		&item.Completed,
		timestamp{&item.CreatedAt},
	)
	return item, err
}

// timestamp scans created_at whether the driver hands back a time.Time or
// the text SQLite stores for DATETIME defaults.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported created_at type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unparseable created_at %q", s)
}
