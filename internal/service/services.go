package service

import (
	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/store"
)

type Services struct {
	HiveSectionService HiveSectionService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hiveSectionService := NewHiveSectionValidationService().
		Wrap(NewHiveSectionService(storages.HiveSectionRepository, logger))

	return &Services{
		HiveSectionService: hiveSectionService,
		AppInfoService:     appInfoService,
	}, nil
}
