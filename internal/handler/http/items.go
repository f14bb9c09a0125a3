// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/utils"
	"github.com/MKhiriev/go-grocery-list/models"
	"github.com/go-chi/chi/v5"
)

// listItems answers with every stored item, newest first.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// createItem decodes a NewItem and answers with the stored item.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var newItem models.NewItem
	if err := json.NewDecoder(r.Body).Decode(&newItem); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	created, err := h.services.ItemService.Create(r.Context(), newItem)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("item_id", created.ID).Msg("item created")
	utils.WriteJSON(w, created, http.StatusOK)
}

// updateItem applies a partial update. An empty body is a no-op update.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ItemUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	updated, err := h.services.ItemService.Update(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteItem removes one item. Unknown ids are not an error.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ItemService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCompleted(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ItemService.ClearCompleted(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func itemIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidItemID, raw)
	}
	return id, nil
}
