package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/handler"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/server"
	"github.com/MKhiriev/go-grocery-list/internal/service"
	"github.com/MKhiriev/go-grocery-list/internal/store"
	"github.com/MKhiriev/go-grocery-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("grocery-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	// an explicit APP_VERSION wins over the linker value
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("cache", cfg.Storage.Cache.RedisAddress != "").
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err = storages.Initialize(ctx); err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("error initializing storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, storages)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
