// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidItemID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidItemID = errors.New("invalid item id in path")

	// ErrInvalidBody is returned when a request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid request body")
)
