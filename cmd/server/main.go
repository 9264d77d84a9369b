package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/blueprint-utils/internal/blueprint"
	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/handler"
	"github.com/MKhiriev/blueprint-utils/internal/lifecycle"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/metrics"
	"github.com/MKhiriev/blueprint-utils/internal/policy"
	"github.com/MKhiriev/blueprint-utils/internal/registry"
	"github.com/MKhiriev/blueprint-utils/internal/server"
	"github.com/MKhiriev/blueprint-utils/internal/service"
	"github.com/MKhiriev/blueprint-utils/internal/store"
	"github.com/MKhiriev/blueprint-utils/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("blueprint-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	modelRegistry := registry.New(log)
	if err = modelRegistry.LoadDir(cfg.Models.Dir); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Models.Dir).Msg("error loading models")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), modelRegistry, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	policies, err := policy.NewRegistryWithBuiltins(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating policies")
	}

	m := metrics.New()
	emitter := lifecycle.NewEmitter()

	hook := blueprint.NewHook(blueprint.NewConfig(*cfg), modelRegistry, services.ModelService, policies, m, log)
	if err = hook.Initialize(emitter); err != nil {
		log.Fatal().Err(err).Msg("error initializing blueprint hook")
	}

	handlers, err := handler.NewHandlers(services, emitter, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(ctx, handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = emitter.Emit(ctx, lifecycle.EventReady, hook.Routes()); err != nil {
		log.Fatal().Err(err).Msg("error emitting ready")
	}
	log.Info().Int("routes", len(hook.Routes())).Msg("blueprint routes bound")

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
