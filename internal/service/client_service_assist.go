package service

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-grocery-list/internal/assist"
	"github.com/MKhiriev/go-grocery-list/models"
)

type clientAssistService struct {
	assistant assist.Assistant

	suggesting atomic.Bool
	expanding  atomic.Bool
}

func NewClientAssistService(assistant assist.Assistant) ClientAssistService {
	return &clientAssistService{assistant: assistant}
}

// Suggest is a no-op for a blank name.
func (s *clientAssistService) Suggest(ctx context.Context, name string) (models.Suggestion, bool, error) {
	if strings.TrimSpace(name) == "" {
		return models.Suggestion{}, false, nil
	}
	if !s.suggesting.CompareAndSwap(false, true) {
		return models.Suggestion{}, false, ErrAssistBusy
	}
	defer s.suggesting.Store(false)

	suggestion, ok := s.assistant.Suggest(ctx, name)
	return suggestion, ok, nil
}

// Expand is a no-op for blank text.
func (s *clientAssistService) Expand(ctx context.Context, text string) ([]models.ItemDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if !s.expanding.CompareAndSwap(false, true) {
		return nil, ErrAssistBusy
	}
	defer s.expanding.Store(false)

	return s.assistant.Expand(ctx, text), nil
}
