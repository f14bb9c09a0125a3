// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/service"
	"github.com/MKhiriev/go-grocery-list/internal/store"
	"github.com/MKhiriev/go-grocery-list/internal/validators"
)

// describeError turns a client service error into a short status line text.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return "server is unavailable"
	case errors.Is(err, store.ErrItemNotFound):
		return "item no longer exists, press r to reload"
	case errors.Is(err, validators.ErrEmptyName):
		return "name is required"
	case errors.Is(err, validators.ErrInvalidCategory):
		return "unknown category"
	case errors.Is(err, validators.ErrInvalidPriority):
		return "unknown priority"
	case errors.Is(err, validators.ErrFieldTooLong):
		return "a field is too long"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "the server rejected the data"
	case errors.Is(err, service.ErrAssistBusy):
		return "assistant is busy"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "server is unavailable"
	}

	return err.Error()
}
