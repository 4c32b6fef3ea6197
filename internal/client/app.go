package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/signpost/internal/adapter"
	"github.com/MKhiriev/signpost/internal/config"
	"github.com/MKhiriev/signpost/internal/coordinator"
	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/internal/service"
	"github.com/MKhiriev/signpost/internal/session"
	"github.com/MKhiriev/signpost/internal/store"
	"github.com/MKhiriev/signpost/internal/tui"
	"github.com/MKhiriev/signpost/internal/workers"
	"github.com/MKhiriev/signpost/models"
)

var _ Client = (*App)(nil)

type App struct {
	services    *service.ClientServices
	coordinator *coordinator.Coordinator
	storages    *store.ClientStorages
	buildInfo   models.AppBuildInfo
	logger      *logger.Logger
}

// Startup is what the two startup jobs found.
type Startup struct {
	Policy      models.InstancePolicy
	SecretFound bool
	// LoadErr is a credential store failure. The secret is then absent.
	LoadErr error
}

// NewApp opens the local store and connects the services to the
// announcement service at cfg.Adapter.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serviceAdapter, err := adapter.NewHTTPServiceAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create service adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serviceAdapter, cfg.App, logger)

	app := newApp(services, session.New(cfg.App.MasterPassword), buildInfo, logger)
	app.storages = storages
	return app, nil
}

func newApp(services *service.ClientServices, sess *session.Session, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		services:    services,
		coordinator: coordinator.New(services.AnnouncementService, sess, coordinator.WithLogger(logger)),
		buildInfo:   buildInfo,
		logger:      logger,
	}
}

// Run starts the interactive TUI. The TUI performs its own startup.
func (a *App) Run(ctx context.Context) error {
	return tui.New(a.services, a.coordinator, a.buildInfo, a.logger).Run(ctx)
}

// Startup resolves the instance policy and loads the saved secret side by
// side, then records both in the session.
func (a *App) Startup(ctx context.Context) Startup {
	var (
		result Startup
		secret string
	)

	workers.New(
		workers.WorkerFunc(func(ctx context.Context) {
			result.Policy = a.services.PolicyResolver.Resolve(ctx)
		}),
		workers.WorkerFunc(func(ctx context.Context) {
			secret, result.SecretFound, result.LoadErr = a.services.CredentialService.Load(ctx)
		}),
	).Run(ctx)

	sess := a.coordinator.Session()
	sess.SetPolicy(result.Policy)
	if result.SecretFound {
		sess.CommitSecret(secret)
	}

	a.logger.Debug().
		Str("policy", result.Policy.String()).
		Bool("secret_found", result.SecretFound).
		Msg("startup finished")

	return result
}

func (a *App) Coordinator() *coordinator.Coordinator {
	return a.coordinator
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

// Close releases the local database.
func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
