package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Sheryaar-Ansar/sufyanessence-admin/internal/api/http"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/api/http/handlers"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/backend"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/config"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/events"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/guard"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/observability"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/service"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/session"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/token"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenStore, redisStore, err := newTokenStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to init token store", zap.Error(err))
	}
	if redisStore != nil {
		defer redisStore.Close()
	}

	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher()
	observability.RegisterAuditLog(dispatcher, logger)
	observability.RegisterSessionMetrics(dispatcher, metrics)

	backendClient := backend.NewClient(cfg.Backend, tokenStore, logger, metrics)

	sessions := session.NewManager(session.ManagerDependencies{
		Store:      tokenStore,
		Transport:  backendClient,
		Dispatcher: dispatcher,
	})
	// Resolve the startup session check before any route is served, so the
	// guard never has to decide against an unresolved state.
	sessions.Initialize(ctx)

	orderService := service.NewOrderService(backendClient)
	dashboardService := service.NewDashboardService(backendClient, cfg.Session.StatsRefreshInterval())
	worker.StartStatsWorker(ctx, dashboardService, cfg.Session.StatsRefreshInterval(), logger)

	routeGuard := guard.New(sessions)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, sessions, redisStore),
		Auth:       handlers.NewAuthHandler(sessions),
		Products:   handlers.NewProductsHandler(backendClient),
		Categories: handlers.NewCategoriesHandler(backendClient),
		Reviews:    handlers.NewReviewsHandler(backendClient),
		Orders:     handlers.NewOrdersHandler(orderService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
		Guard:      routeGuard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newTokenStore(cfg *config.Config, logger *zap.Logger) (token.Store, *token.RedisStore, error) {
	switch cfg.Session.StoreDriver {
	case "redis":
		store := token.NewRedisStore(cfg.Redis, logger)
		return store, store, nil
	default:
		store, err := token.NewFileStore(cfg.Session.TokenFile)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
