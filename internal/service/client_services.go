package service

import (
	"github.com/MKhiriev/go-grocery-list/internal/adapter"
	"github.com/MKhiriev/go-grocery-list/internal/assist"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
)

type ClientServices struct {
	ItemService   ClientItemService
	AssistService ClientAssistService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, assistant assist.Assistant, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ItemService:   NewClientItemService(serverAdapter, logger),
		AssistService: NewClientAssistService(assistant),
	}
}
