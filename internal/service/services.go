package service

import (
	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/store"
	"github.com/MKhiriev/go-grocery-list/internal/validators"
)

type Services struct {
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	itemService := NewItemValidationService(validators.NewItemValidator()).
		Wrap(NewItemService(storages.ItemRepository, logger))

	return &Services{
		ItemService:    itemService,
		AppInfoService: appInfoService,
	}, nil
}
