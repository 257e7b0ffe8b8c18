package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/camera-gateway/internal/api/http"
	"github.com/spec-kit/camera-gateway/internal/api/http/handlers"
	"github.com/spec-kit/camera-gateway/internal/auth"
	"github.com/spec-kit/camera-gateway/internal/config"
	"github.com/spec-kit/camera-gateway/internal/events"
	"github.com/spec-kit/camera-gateway/internal/observability"
	"github.com/spec-kit/camera-gateway/internal/reolink"
	"github.com/spec-kit/camera-gateway/internal/service"
	"github.com/spec-kit/camera-gateway/internal/worker"
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

	if cfg.Upstream.Email == "" || cfg.Upstream.Password == "" || cfg.Upstream.CameraUID == "" {
		logger.Warn("upstream credentials or camera uid missing; camera operations will fail")
	}

	metrics := observability.NewMetrics()
	registry := auth.NewRegistry()
	dispatcher := events.NewInMemoryDispatcher()

	upstream := reolink.NewClient(cfg.Upstream, logger)

	authService := service.NewAuthService(*cfg, registry)
	cameraService := service.NewCameraService(upstream, dispatcher)
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cameraService),
		Auth:           handlers.NewAuthHandler(authService),
		Camera:         handlers.NewCameraHandler(cameraService),
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
