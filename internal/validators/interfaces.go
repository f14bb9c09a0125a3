// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces input rules on grocery item payloads before
// they reach the store.
//
// A Validator accepts any supported value and an optional list of field
// names restricting which rules run. Without field names every rule for the
// value's type is applied.
package validators

import "context"

// Validator validates arbitrary input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
