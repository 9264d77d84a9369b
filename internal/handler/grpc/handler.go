// Package grpc implements the gRPC transport of the blueprint server. The
// server exposes the standard gRPC health service, which reports SERVING
// once the blueprint routes are bound and the application is ready.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/blueprint-utils/internal/lifecycle"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
)

// ServiceName is the name reported to health checks for the blueprint
// server. The empty name reports the same status.
const ServiceName = "blueprint.Utils"

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status is NOT_SERVING
// until the emitter fires [lifecycle.EventReady]. emitter may be nil, in
// which case the status must be changed with [Handler.SetServing].
func NewHandler(emitter *lifecycle.Emitter, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	if emitter != nil {
		emitter.On(lifecycle.EventReady, func(context.Context, any) error {
			h.SetServing()
			return nil
		})
	}

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the server as ready.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Msg("gRPC health status set to SERVING")
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
