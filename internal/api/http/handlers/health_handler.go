package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/camera-gateway/internal/service"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	camera      *service.CameraService
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, camera *service.CameraService) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, camera: camera}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports whether an upstream vendor session is currently held. A
// missing session is not a hard failure: the client authenticates lazily on
// the first camera operation.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	session := h.camera.UpstreamSession()

	upstream := "unauthenticated"
	if session.Present() {
		upstream = "authenticated"
		if session.Expired() {
			upstream = "authenticated (expired)"
		}
	}

	return c.JSON(fiber.Map{
		"status":   "ready",
		"upstream": upstream,
	})
}
