package handler

import (
	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/handler/grpc"
	"github.com/MKhiriev/blueprint-utils/internal/handler/http"
	"github.com/MKhiriev/blueprint-utils/internal/lifecycle"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/metrics"
	"github.com/MKhiriev/blueprint-utils/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, emitter *lifecycle.Emitter, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, emitter, metrics, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(emitter, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
