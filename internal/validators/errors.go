package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID       = errors.New("invalid item id")
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrFieldTooLong    = errors.New("field is too long")
)
