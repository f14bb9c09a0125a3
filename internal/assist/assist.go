// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assist suggests categories and priorities for grocery items and
// turns recipe descriptions into ingredient drafts.
//
// Two implementations of [Assistant] exist: a Gemini-backed one used when an
// API key is configured, and an offline keyword matcher. Neither ever fails
// loudly: transport errors and malformed model output are logged and
// reported as an empty result.
package assist

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/models"
)

//go:generate mockgen -source=assist.go -destination=../mock/assistant_mock.go -package=mock

// Assistant is the AI collaborator consulted by the client.
type Assistant interface {
	// Suggest proposes a category and priority for an item name. The bool is
	// false when nothing usable came back. Suggested fields are always
	// members of the closed sets; a field the model got wrong is left empty.
	Suggest(ctx context.Context, name string) (models.Suggestion, bool)

	// Expand turns a recipe or meal description into ingredient drafts.
	// Every draft has a non-blank name and valid category and priority.
	Expand(ctx context.Context, text string) []models.ItemDraft
}

// NewAssistant picks the Gemini assistant when cfg carries an API key and
// the keyword assistant otherwise.
func NewAssistant(cfg config.ClientAssist, log *logger.Logger) Assistant {
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Info().Msg("no assist API key configured, using keyword assistant")
		return NewKeywordAssistant()
	}

	log.Info().Str("model", cfg.Model).Msg("using gemini assistant")
	return NewGeminiAssistant(cfg, log)
}
