package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/uktrade/help-desk-api/internal/api/http"
	"github.com/uktrade/help-desk-api/internal/api/http/handlers"
	"github.com/uktrade/help-desk-api/internal/auth"
	"github.com/uktrade/help-desk-api/internal/config"
	"github.com/uktrade/help-desk-api/internal/domain"
	"github.com/uktrade/help-desk-api/internal/events"
	"github.com/uktrade/help-desk-api/internal/halo"
	"github.com/uktrade/help-desk-api/internal/observability"
	"github.com/uktrade/help-desk-api/internal/persistence"
	"github.com/uktrade/help-desk-api/internal/repository"
	"github.com/uktrade/help-desk-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	tokenCache := halo.NewRedisTokenCache(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	audit := service.NewAuditService(dispatcher, logger)
	audit.RegisterHandlers()

	// Every request gets a manager scoped to the caller's Halo credentials;
	// only the token cache is shared between requests.
	factory := handlers.ManagerFactory(func(creds *domain.HelpDeskCreds) *service.HaloManager {
		client := halo.NewClient(
			cfg.Halo.BaseURL,
			creds.HaloClientID,
			creds.HaloClientSecret,
			logger,
			halo.WithTokenCache(tokenCache),
			halo.WithMetrics(metrics),
		)
		return service.NewHaloManager(service.ManagerDependencies{
			Client:     client,
			Dispatcher: dispatcher,
			Logger:     logger,
			Tenant:     creds.ZendeskEmail,
			PageSize:   cfg.Halo.PageSize,
		})
	})

	credsRepo := repository.NewCredentialsRepository(pg.PoolHandle())
	authMiddleware := auth.NewMiddleware(credsRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Tickets:        handlers.NewTicketsHandler(factory),
		Users:          handlers.NewUsersHandler(factory),
		Groups:         handlers.NewGroupsHandler(factory),
		Agents:         handlers.NewAgentsHandler(factory),
		Uploads:        handlers.NewUploadsHandler(factory),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
