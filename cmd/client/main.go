package main

import (
	"fmt"

	"github.com/MKhiriev/go-grocery-list/internal/adapter"
	"github.com/MKhiriev/go-grocery-list/internal/assist"
	"github.com/MKhiriev/go-grocery-list/internal/client"
	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/service"
	"github.com/MKhiriev/go-grocery-list/internal/tui"
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

	log := logger.NewClientLogger("grocery-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	assistant := assist.NewAssistant(cfg.Assist, log)
	services := service.NewClientServices(serverAdapter, assistant, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
