package store

import (
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-list/models"
)

const itemsTable = "grocery_items"

// itemColumns is the projection shared by SELECT and RETURNING clauses.
// COALESCE shields scans from NULLs in rows written by older schemas.
var itemColumns = []string{
	"id",
	"name",
	"COALESCE(category, 'Other')",
	"COALESCE(quantity, '')",
	"COALESCE(priority, 'Medium')",
	"COALESCE(location, '')",
	"COALESCE(completed, 0)",
	"created_at",
}

var errEmptyUpdate = errors.New("update has no fields")

// itemQueries builds grocery_items statements with the dialect's
// placeholder format.
type itemQueries struct {
	builder sq.StatementBuilderType
}

func newItemQueries(dialect Dialect) itemQueries {
	return itemQueries{
		builder: sq.StatementBuilder.PlaceholderFormat(dialect.placeholder()),
	}
}

func returningItem() string {
	return "RETURNING " + strings.Join(itemColumns, ", ")
}

func (q itemQueries) selectAll() (string, []any, error) {
	return q.builder.
		Select(itemColumns...).
		From(itemsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (q itemQueries) selectByID(id int64) (string, []any, error) {
	return q.builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// insert expects item to be normalized already.
func (q itemQueries) insert(item models.NewItem) (string, []any, error) {
	return q.builder.
		Insert(itemsTable).
		Columns("name", "category", "quantity", "priority", "location", "completed").
		Values(item.Name, item.Category, item.Quantity, item.Priority, item.Location, models.Flag(false)).
		Suffix(returningItem()).
		ToSql()
}

// update sets only the supplied fields. An empty update yields errEmptyUpdate.
func (q itemQueries) update(id int64, u models.ItemUpdate) (string, []any, error) {
	if u.IsEmpty() {
		return "", nil, errEmptyUpdate
	}

	stmt := q.builder.Update(itemsTable)
	if u.Name != nil {
		stmt = stmt.Set("name", *u.Name)
	}
	if u.Category != nil {
		stmt = stmt.Set("category", *u.Category)
	}
	if u.Quantity != nil {
		stmt = stmt.Set("quantity", *u.Quantity)
	}
	if u.Priority != nil {
		stmt = stmt.Set("priority", *u.Priority)
	}
	if u.Location != nil {
		stmt = stmt.Set("location", *u.Location)
	}
	if u.Completed != nil {
		stmt = stmt.Set("completed", *u.Completed)
	}

	return stmt.
		Where(sq.Eq{"id": id}).
		Suffix(returningItem()).
		ToSql()
}

func (q itemQueries) deleteByID(id int64) (string, []any, error) {
	return q.builder.
		Delete(itemsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q itemQueries) deleteCompleted() (string, []any, error) {
	return q.builder.
		Delete(itemsTable).
		Where(sq.NotEq{"completed": 0}).
		ToSql()
}
