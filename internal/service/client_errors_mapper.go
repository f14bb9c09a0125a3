// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-grocery-list/internal/adapter"
	"github.com/MKhiriev/go-grocery-list/internal/app"
	"github.com/MKhiriev/go-grocery-list/internal/store"
	"github.com/MKhiriev/go-grocery-list/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	body := ""
	if errors.As(err, &httpErr) {
		body = httpErr.Body
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch body {
		case app.MsgNameRequired:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyName)
		case app.MsgInvalidCategory:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCategory)
		case app.MsgInvalidPriority:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPriority)
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrItemNotFound, err)

	case errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}
