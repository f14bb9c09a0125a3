// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's gateway to the grocery list
// server.
//
// [ServerAdapter] hides the REST surface behind typed methods. Non-2xx
// responses come back as *[HTTPError], which unwraps to a status sentinel
// ([ErrBadRequest], [ErrNotFound], ...) so callers can match with
// [errors.Is]. Network failures wrap [ErrTransport]. Nothing is retried.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-grocery-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the Item API.
type ServerAdapter interface {
	// GetItems fetches the full list, most recent first.
	GetItems(ctx context.Context) ([]models.GroceryItem, error)

	// AddItem creates an item and returns the stored record.
	AddItem(ctx context.Context, item models.NewItem) (models.GroceryItem, error)

	// UpdateItem sends the supplied fields of update and returns the
	// resulting record.
	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.GroceryItem, error)

	// DeleteItem removes an item. Deleting an unknown id succeeds.
	DeleteItem(ctx context.Context, id int64) error

	// ClearCompleted removes every completed item.
	ClearCompleted(ctx context.Context) error

	// GetServerVersion returns the build version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
