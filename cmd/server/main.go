package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flexprice/playbill/internal/api"
	v1 "github.com/flexprice/playbill/internal/api/v1"
	"github.com/flexprice/playbill/internal/cache"
	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/postgres"
	"github.com/flexprice/playbill/internal/pricing"
	"github.com/flexprice/playbill/internal/repository"
	"github.com/flexprice/playbill/internal/sentry"
	"github.com/flexprice/playbill/internal/service"
	"github.com/flexprice/playbill/internal/types"
	"github.com/flexprice/playbill/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.NewInMemoryCache,

			// Pricing
			pricing.NewCalculatorFromConfig,

			// Postgres
			provideDB,

			// Repositories
			provideRepositoryParams,
			repository.NewPlayRepository,
			repository.NewInvoiceRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewPlayService,
			service.NewInvoiceService,
			service.NewStatementService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startAPIServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

// provideDB opens postgres only when it backs the repositories
func provideDB(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger) (*postgres.DB, error) {
	if cfg.Storage.Type != types.StorageTypePostgres {
		return nil, nil
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})
	return db, nil
}

func provideRepositoryParams(cfg *config.Configuration, db *postgres.DB, log *logger.Logger) repository.RepositoryParams {
	return repository.RepositoryParams{
		Config: cfg,
		DB:     db,
		Logger: log,
	}
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	playService service.PlayService,
	invoiceService service.InvoiceService,
	statementService service.StatementService,
) api.Handlers {
	return api.Handlers{
		Health:    v1.NewHealthHandler(cfg),
		Play:      v1.NewPlayHandler(playService, logger),
		Invoice:   v1.NewInvoiceHandler(invoiceService, logger),
		Statement: v1.NewStatementHandler(statementService, logger),
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server",
				"address", cfg.Server.Address,
				"storage", cfg.Storage.Type,
			)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down API server")
			return srv.Shutdown(ctx)
		},
	})
}
