package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/careerhub/portal-service/internal/api/http"
	"github.com/careerhub/portal-service/internal/api/http/handlers"
	"github.com/careerhub/portal-service/internal/auth"
	"github.com/careerhub/portal-service/internal/config"
	"github.com/careerhub/portal-service/internal/events"
	"github.com/careerhub/portal-service/internal/messaging"
	"github.com/careerhub/portal-service/internal/observability"
	"github.com/careerhub/portal-service/internal/persistence"
	"github.com/careerhub/portal-service/internal/repository"
	"github.com/careerhub/portal-service/internal/service"
	"github.com/careerhub/portal-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, storePinger, closeStore := openStores(ctx, cfg, logger)
	defer closeStore()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()
	stores.Profiles = repository.NewCachingProfileRepository(stores.Profiles, redis.ClientHandle(), cfg.Redis.ProfileCacheTTLDuration(), logger)

	var publisher messaging.Publisher
	if cfg.Notification.AMQPURL != "" {
		amqpPublisher, err := messaging.NewAMQPPublisher(cfg.Notification.AMQPURL, cfg.Notification.AMQPExchange, logger)
		if err != nil {
			logger.Fatal("failed to connect rabbitmq", zap.Error(err))
		}
		publisher = amqpPublisher
	}

	dispatcher := events.NewInMemoryDispatcher(logger)
	notificationService := service.NewNotificationService(dispatcher, publisher, logger, cfg.Notification)
	stopNotifications := worker.StartNotificationWorker(notificationService, publisher, logger)
	defer stopNotifications()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenAudience, cfg.Auth.TokenTTL())
	authMiddleware := auth.NewAuthMiddleware(auth.NewGate(tokens))
	adminPolicy := auth.NewAdminPolicy(cfg.Auth.AdminSubjects, cfg.Auth.EnforceAdminRole, stores.Profiles)

	profileService := service.NewProfileService(stores.Profiles, cfg.Auth.AdminSubjects, logger)
	meetingService := service.NewMeetingService(stores.Meetings, dispatcher, logger)
	workflow := service.NewApprovalWorkflow(stores.Meetings, dispatcher, logger)

	var identityHandler *handlers.IdentityHandler
	if cfg.Auth.LocalProvider {
		identityService := service.NewIdentityService(stores.Accounts, tokens, cfg.Auth.BcryptCost, logger)
		identityHandler = handlers.NewIdentityHandler(identityService)
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	deps := map[string]handlers.Pinger{cfg.Store.Driver: storePinger}
	if redis.ClientHandle() != nil {
		deps["redis"] = redis
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Profiles:       handlers.NewProfileHandler(profileService),
		Meetings:       handlers.NewMeetingsHandler(meetingService, workflow),
		Identity:       identityHandler,
		AuthMiddleware: authMiddleware,
		AdminPolicy:    adminPolicy,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("store", cfg.Store.Driver))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// openStores connects the configured backend and applies migrations when enabled.
func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Stores, handlers.Pinger, func()) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		if cfg.Store.RunMigrations {
			if err := persistence.RunPostgresMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		return repository.NewPostgresStores(pg.PoolHandle()), pg, pg.Close
	default:
		db, err := persistence.NewSQLite(ctx, cfg.SQLite, logger)
		if err != nil {
			logger.Fatal("failed to open sqlite", zap.Error(err))
		}
		if cfg.Store.RunMigrations {
			if err := persistence.RunSQLiteMigrations(ctx, db.DB, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		return repository.NewSQLiteStores(db.DB), db, db.Close
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
