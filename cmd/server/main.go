package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/handler"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/server"
	"github.com/MKhiriev/katla-sections/internal/service"
	"github.com/MKhiriev/katla-sections/internal/store"
	"github.com/MKhiriev/katla-sections/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("sections-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log, err = log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log = logger.NewLogger("sections-server")
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	return info
}
