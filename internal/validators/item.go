package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-grocery-list/models"
)

// Field names accepted by [ItemValidator].
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldQuantity = "quantity"
	FieldPriority = "priority"
	FieldLocation = "location"
)

// Upper bounds, in characters, for free-text fields.
const (
	MaxNameLength = 200
	MaxTextLength = 100
)

var allItemFields = []string{FieldName, FieldCategory, FieldQuantity, FieldPriority, FieldLocation}

// ItemValidator checks create payloads, partial updates and ids.
//
// Category and priority are strict: a value outside the closed sets is
// rejected rather than silently replaced. An omitted value is fine on create
// (defaults apply) and on update (field stays unchanged).
type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewItem:
		return v.validateNewItem(ctx, value, fields...)
	case *models.NewItem:
		return v.validateNewItem(ctx, *value, fields...)

	case models.ItemUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ItemUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	case int64:
		if value <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidID, value)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateNewItem(_ context.Context, item models.NewItem, fields ...string) error {
	if len(fields) == 0 {
		fields = allItemFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = checkName(item.Name)
		case FieldCategory:
			if item.Category != "" {
				err = checkCategory(item.Category)
			}
		case FieldPriority:
			if item.Priority != "" {
				err = checkPriority(item.Priority)
			}
		case FieldQuantity:
			err = checkLength(FieldQuantity, item.Quantity, MaxTextLength)
		case FieldLocation:
			err = checkLength(FieldLocation, item.Location, MaxTextLength)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ItemValidator) validateUpdate(_ context.Context, update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = allItemFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			if update.Name != nil {
				err = checkName(*update.Name)
			}
		case FieldCategory:
			if update.Category != nil {
				err = checkCategory(*update.Category)
			}
		case FieldPriority:
			if update.Priority != nil {
				err = checkPriority(*update.Priority)
			}
		case FieldQuantity:
			if update.Quantity != nil {
				err = checkLength(FieldQuantity, *update.Quantity, MaxTextLength)
			}
		case FieldLocation:
			if update.Location != nil {
				err = checkLength(FieldLocation, *update.Location, MaxTextLength)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return checkLength(FieldName, name, MaxNameLength)
}

func checkCategory(c models.Category) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	return nil
}

func checkPriority(p models.Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, p)
	}
	return nil
}

func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > limit {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, field, limit)
	}
	return nil
}
