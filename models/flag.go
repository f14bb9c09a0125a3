// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Flag is a two-valued field persisted and serialized as 0/1.
//
// On input it accepts JSON booleans as well as the numbers 0 and 1 so that
// clients may send either representation.
type Flag bool

// Int returns 1 for a set flag and 0 otherwise.
func (f Flag) Int() int {
	if f {
		return 1
	}
	return 0
}

// MarshalJSON encodes the flag as 0 or 1.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts true, false, 0 and 1.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFlag, data)
	}
	return nil
}

// Value implements [driver.Valuer].
func (f Flag) Value() (driver.Value, error) {
	return int64(f.Int()), nil
}

// Scan implements [sql.Scanner]. NULL scans as false.
func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case int64:
		*f = v != 0
	case int32:
		*f = v != 0
	case int:
		*f = v != 0
	case bool:
		*f = Flag(v)
	case []byte:
		return f.UnmarshalJSON(v)
	case string:
		return f.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFlag, src)
	}
	return nil
}

var _ json.Marshaler = Flag(false)
