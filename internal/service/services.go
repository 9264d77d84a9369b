package service

import (
	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	ModelService   ModelService
}

func NewServices(repositories *store.Repositories, lookup ModelLookup, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfoService,
		ModelService:   NewModelService(repositories.ModelRepository, lookup, logger),
	}, nil
}
