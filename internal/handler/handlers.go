package handler

import (
	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/handler/http"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
