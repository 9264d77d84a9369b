package http

import (
	"time"

	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/lifecycle"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/metrics"
	"github.com/MKhiriev/blueprint-utils/internal/service"
)

type Handler struct {
	services *service.Services
	emitter  *lifecycle.Emitter
	metrics  *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler constructs a Handler. metrics may be nil, in which case
// /metrics is not served.
func NewHandler(services *service.Services, emitter *lifecycle.Emitter, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		emitter:        emitter,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
