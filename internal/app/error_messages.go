// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages written into Item API
// response bodies, shared by the handlers and the client-side error mapper.
package app

const (
	// MsgInvalidDataProvided is returned when a body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidItemID is returned when the {id} path segment is not an
	// integer.
	MsgInvalidItemID = "invalid item id"

	MsgNameRequired    = "name is required"
	MsgInvalidCategory = "invalid category"
	MsgInvalidPriority = "invalid priority"
	MsgFieldTooLong    = "field is too long"

	// MsgItemNotFound is returned when an update targets an unknown id.
	MsgItemNotFound = "item not found"

	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned by the health endpoint and by item
	// routes while the store is not ready or already closed.
	MsgStorageUnavailable = "storage unavailable"
)
