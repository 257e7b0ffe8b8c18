package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/camera-gateway/internal/api/http/handlers"
	"github.com/spec-kit/camera-gateway/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Camera         *handlers.CameraHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/auth/login", cfg.Auth.Login)

	camera := api.Group("/camera", cfg.AuthMiddleware.Handle)
	camera.Get("/status", cfg.Camera.Status)
	camera.Post("/ptz", cfg.Camera.PTZ)
	camera.Post("/preset/:id", cfg.Camera.RecallPreset)
	camera.Get("/presets", cfg.Camera.Presets)
}
