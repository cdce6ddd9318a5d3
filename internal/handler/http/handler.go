package http

import (
	"time"

	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/service"
	"github.com/MKhiriev/katla-sections/internal/utils"
	"github.com/MKhiriev/katla-sections/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewHiveSectionValidator(),
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
